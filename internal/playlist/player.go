package playlist

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

var ErrEmpty = errors.New("playlist: program has no clips")

// MaxClipMs keeps a clip's interval well inside the 32-bit microsecond clock.
const MaxClipMs = 3_600_000

// Player walks a Program on a clock. Each clip runs on its own interval timer;
// Tick is polled from the conductor loop and never blocks.
type Player struct {
	State State

	prog   Program
	idx    int
	clk    timing.Clock
	timer  *timing.IntervalTimer
	paused uint32 // elapsed µs at the moment of Pause
	hooks  Hooks
}

func NewPlayer(clk timing.Clock, h Hooks) *Player {
	return &Player{
		State: Idle,
		clk:   clk,
		timer: timing.NewIntervalTimer(clk, 0),
		hooks: h,
	}
}

// Validate checks a program without loading it.
func Validate(prog Program) error {
	if len(prog.Clips) == 0 {
		return ErrEmpty
	}
	for i, c := range prog.Clips {
		if c.Demo == "" {
			return fmt.Errorf("playlist: clip %d has no demo", i)
		}
		if c.DurationMs == 0 {
			return fmt.Errorf("playlist: clip %d (%s) has zero duration", i, c.Demo)
		}
		if c.DurationMs > MaxClipMs {
			return fmt.Errorf("playlist: clip %d (%s) longer than %d ms", i, c.Demo, MaxClipMs)
		}
		for _, k := range c.Brightness.Keys {
			if !ValidEase(k.Ease) {
				return fmt.Errorf("playlist: clip %d (%s): unknown ease %q", i, c.Demo, k.Ease)
			}
		}
	}
	return nil
}

// Load replaces the program and resets to Idle.
func (p *Player) Load(prog Program) error {
	if err := Validate(prog); err != nil {
		return err
	}
	clips := make([]Clip, len(prog.Clips))
	copy(clips, prog.Clips)
	for i := range clips {
		clips[i].Brightness.Keys = append([]Keyframe(nil), clips[i].Brightness.Keys...)
		clips[i].Brightness.Sort()
	}
	p.prog = Program{Loop: prog.Loop, Clips: clips}
	p.idx = 0
	p.State = Idle
	return nil
}

// Start runs the current clip from its beginning.
func (p *Player) Start() {
	if p.State == Running || len(p.prog.Clips) == 0 {
		return
	}
	p.State = Running
	p.enter(p.idx)
}

func (p *Player) Pause() {
	if p.State != Running {
		return
	}
	p.paused = p.timer.Elapsed()
	p.State = Paused
}

func (p *Player) Resume() {
	if p.State != Paused {
		return
	}
	p.timer.Start(p.clk.Micros()-p.paused, p.timer.Duration())
	p.State = Running
}

// Stop rewinds to the first clip.
func (p *Player) Stop() {
	p.State = Idle
	p.idx = 0
	p.setGain(1)
}

// Index is the position of the current clip.
func (p *Player) Index() int { return p.idx }

// Current returns the active clip, if any.
func (p *Player) Current() (Clip, bool) {
	if len(p.prog.Clips) == 0 {
		return Clip{}, false
	}
	return p.prog.Clips[p.idx], true
}

// Tick emits the clip's gain for the current time and moves on when the clip
// has run its duration.
func (p *Player) Tick() {
	if p.State != Running {
		return
	}
	clip := p.prog.Clips[p.idx]
	localT := float64(p.timer.Elapsed()) / 1e6
	p.setGain(float32(clamp01(clip.Brightness.Eval(localT, 1))))

	if p.timer.Check() {
		p.advance()
	}
}

func (p *Player) next() int {
	ni := p.idx + 1
	if ni >= len(p.prog.Clips) {
		if p.prog.Loop {
			return 0
		}
		return -1
	}
	return ni
}

func (p *Player) advance() {
	ni := p.next()
	if ni == -1 {
		p.State = Idle
		p.setGain(1)
		return
	}
	p.enter(ni)
}

func (p *Player) enter(i int) {
	p.idx = i
	clip := p.prog.Clips[i]
	p.timer.Update(clip.DurationMs * 1000)
	if p.hooks.SetDemo != nil {
		p.hooks.SetDemo(clip.Demo)
	}
	p.setGain(float32(clamp01(clip.Brightness.Eval(0, 1))))
}

func (p *Player) setGain(g float32) {
	if p.hooks.SetGain != nil {
		p.hooks.SetGain(g)
	}
}
