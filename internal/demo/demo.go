// Package demo holds the animations that paint the wheel. Every demo shares
// the same three operations and owns nothing but its own state; the frame it
// draws into belongs to the caller.
package demo

import (
	"math/rand"
	"sort"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

// Demo is driven once per scheduler tick. Setup binds the frame and paints the
// initial state; Tick advances the animation if its timer says so; HandleKeys
// receives the current key mask and the bits that changed since last time.
type Demo interface {
	Name() string
	Setup(f *frame.Frame)
	Tick()
	HandleKeys(keys, diff uint16)
}

// NumKeys is how many note keys the input side reports, one bit each.
const NumKeys = 12

// FirstPress returns the lowest key that went down in this update.
func FirstPress(keys, diff uint16) (int, bool) {
	pressed := keys & diff
	for i := 0; i < NumKeys; i++ {
		if pressed&(1<<i) != 0 {
			return i, true
		}
	}
	return 0, false
}

type Options struct {
	Clock      timing.Clock
	Brightness float32
	Palette    palette.Palette
	Edge       frame.EdgePolicy
	Rand       *rand.Rand

	FlashColor       pixel.Color
	FlashDelayUs     uint32
	RainbowStepTicks uint32
	RingFrameUs      uint32
	RingHz           float32
	Blur             float32
	CalibStepTicks   uint32
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = timing.NewSystemClock()
	}
	if o.Brightness <= 0 {
		o.Brightness = 1
	}
	if o.Palette.Len() == 0 {
		o.Palette = palette.Rainbow12
	}
	if o.Edge == 0 {
		o.Edge = frame.EdgeCopy
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	if o.FlashColor.IsBlack() {
		o.FlashColor = palette.White
	}
	if o.FlashDelayUs == 0 {
		o.FlashDelayUs = 500_000
	}
	if o.RainbowStepTicks == 0 {
		o.RainbowStepTicks = 4
	}
	if o.RingFrameUs == 0 {
		o.RingFrameUs = 10_000
	}
	if o.RingHz <= 0 {
		o.RingHz = 0.5
	}
	if o.CalibStepTicks == 0 {
		o.CalibStepTicks = 10
	}
	return o
}

type Factory func(Options) Demo

type Registry struct{ m map[string]Factory }

func NewRegistry() *Registry { return &Registry{m: map[string]Factory{}} }

// Default has every built-in demo.
func Default() *Registry {
	r := NewRegistry()
	r.Register("flash", func(o Options) Demo { return NewFlash(o) })
	r.Register("rainbow", func(o Options) Demo { return NewRainbow(o) })
	r.Register("ring", func(o Options) Demo { return NewRing(o) })
	r.Register("calib", func(o Options) Demo { return NewCalib(o) })
	return r
}

func (r *Registry) Register(name string, f Factory) {
	if f == nil {
		return
	}
	r.m[name] = f
}

func (r *Registry) Has(name string) bool { _, ok := r.m[name]; return ok }

// New builds the named demo, filling unset options with defaults.
func (r *Registry) New(name string, o Options) (Demo, bool) {
	f, ok := r.m[name]
	if !ok {
		return nil, false
	}
	return f(o.withDefaults()), true
}

func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
