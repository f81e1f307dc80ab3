// Package playlist sequences demos over time, with an optional brightness
// envelope per clip.
package playlist

// Keyframe is a value at T seconds into a clip. Ease shapes the segment that
// starts here: "linear", "smooth" or "cubic".
type Keyframe struct {
	T    float64 `yaml:"t"`
	V    float64 `yaml:"v"`
	Ease string  `yaml:"ease,omitempty"`
}

// Envelope interpolates between keyframes sorted by T.
type Envelope struct {
	Keys []Keyframe `yaml:"keys,omitempty"`
}

// Clip plays one demo for DurationMs. Brightness, when it has keys, is a gain
// in [0,1] applied to the demo's output over the clip.
type Clip struct {
	Name       string   `yaml:"name,omitempty"`
	Demo       string   `yaml:"demo"`
	DurationMs uint32   `yaml:"duration_ms"`
	Brightness Envelope `yaml:"brightness,omitempty"`
}

type Program struct {
	Loop  bool   `yaml:"loop,omitempty"`
	Clips []Clip `yaml:"clips"`
}

type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
)

// Hooks are how the player drives the conductor.
type Hooks struct {
	// SetDemo switches the active demo immediately.
	SetDemo func(name string)
	// SetGain scales the active demo's output.
	SetGain func(g float32)
}
