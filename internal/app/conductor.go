package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-povwheel/internal/demo"
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/led"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/playlist"
	"github.com/coreman2200/funtimes-povwheel/internal/power"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
	"github.com/coreman2200/funtimes-povwheel/internal/vec"
)

type Stats struct {
	Ticks       uint64
	Writes      uint64
	WriteErrors uint64
	LoadMA      float64 // estimated draw of the last frame written
	Scale       float32 // limiter scale on the last frame
}

// Conductor is the single cooperative loop: each step it polls input, moves
// the playlist, ticks the active demo and writes one frame. Nothing else
// touches the frames, so no locking is needed.
type Conductor struct {
	Reg     *demo.Registry
	Seq     *playlist.Player
	Drv     led.Driver
	Input   led.InputSource
	Limiter power.Limiter
	Stats   Stats

	opts   demo.Options
	active demo.Demo
	canvas *frame.Frame // what the demo draws
	out    *frame.Frame // canvas after gain and limiting
	gain   float32

	log    zerolog.Logger
	errLog zerolog.Logger
}

// NewConductor sizes the frames and hooks the playlist up to the demo
// registry. The driver doubles as the input source when it can read keys.
func NewConductor(drv led.Driver, reg *demo.Registry, opts demo.Options, columns, rings int, log zerolog.Logger) *Conductor {
	if opts.Clock == nil {
		opts.Clock = timing.NewSystemClock()
	}
	c := &Conductor{
		Reg:     reg,
		Drv:     drv,
		Limiter: power.Default(),
		opts:    opts,
		canvas:  frame.New(columns, rings),
		out:     frame.New(columns, rings),
		gain:    1,
		log:     log,
		errLog:  log.Sample(&zerolog.BurstSampler{Burst: 5, Period: 10 * time.Second}),
	}
	if in, ok := drv.(led.InputSource); ok {
		c.Input = in
	}
	c.Seq = playlist.NewPlayer(opts.Clock, playlist.Hooks{
		SetDemo: func(name string) {
			if err := c.SetDemo(name); err != nil {
				c.log.Error().Err(err).Msg("playlist demo switch failed")
			}
		},
		SetGain: func(g float32) { c.gain = g },
	})
	return c
}

// SetDemo replaces the active demo and sets it up on a cleared canvas.
func (c *Conductor) SetDemo(name string) error {
	d, ok := c.Reg.New(name, c.opts)
	if !ok {
		return fmt.Errorf("unknown demo %q (have %v)", name, c.Reg.List())
	}
	c.canvas.Fill(pixel.Black)
	d.Setup(c.canvas)
	c.active = d
	c.log.Info().Str("demo", name).Msg("demo active")
	return nil
}

func (c *Conductor) Active() demo.Demo { return c.active }

// Canvas is the frame the active demo draws into.
func (c *Conductor) Canvas() *frame.Frame { return c.canvas }

// Output is the last frame handed to the driver.
func (c *Conductor) Output() *frame.Frame { return c.out }

// Step runs one tick. It reports true when the input asked to quit.
func (c *Conductor) Step() bool {
	c.Stats.Ticks++

	if c.Input != nil {
		in := c.Input.Poll()
		if in.Quit {
			return true
		}
		if in.Diff != 0 && c.active != nil {
			c.active.HandleKeys(in.Keys, in.Diff)
		}
	}

	c.Seq.Tick()
	if c.active != nil {
		c.active.Tick()
	}

	vec.ScaleColors(c.out.Pix, c.canvas.Pix, c.gain)
	c.Stats.Scale = 1
	if c.Limiter.Enabled() {
		c.Stats.Scale = c.Limiter.Apply(c.out.Pix)
	}
	c.Stats.LoadMA = c.Limiter.Estimate(c.out.Pix)

	if err := c.Drv.Write(c.out); err != nil {
		c.Stats.WriteErrors++
		c.errLog.Warn().Err(err).Uint64("errors", c.Stats.WriteErrors).Msg("driver write failed")
		return false
	}
	c.Stats.Writes++
	return false
}

// Run steps at tickHz until ctx is done or the input asks to quit.
func (c *Conductor) Run(ctx context.Context, tickHz int) error {
	if tickHz <= 0 {
		tickHz = 1000
	}
	tick := time.NewTicker(time.Second / time.Duration(tickHz))
	defer tick.Stop()

	c.log.Info().Int("tick_hz", tickHz).Msg("conductor running")
	for {
		select {
		case <-ctx.Done():
			c.log.Info().Uint64("ticks", c.Stats.Ticks).Msg("conductor stopped")
			return nil
		case <-tick.C:
			if c.Step() {
				c.log.Info().Msg("quit requested")
				return nil
			}
		}
	}
}
