package demo

import (
	"github.com/coreman2200/funtimes-povwheel/internal/beat"
	"github.com/coreman2200/funtimes-povwheel/internal/filter"
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
	"github.com/coreman2200/funtimes-povwheel/internal/vec"
)

// ringDecay is how much of the previous frame survives each step.
const ringDecay = 0.8

// Ring sweeps one lit ring between hub and rim on a beat wave, leaving a
// fading, blurred trail. Note keys pick the hue.
type Ring struct {
	f          *frame.Frame
	clk        timing.Clock
	timer      *timing.IntervalTimer
	conv       *filter.Convolver
	soft       *frame.Frame
	pal        palette.Palette
	edge       frame.EdgePolicy
	hz         float32
	blur       float32
	hue        float32
	t0         uint32
	brightness float32
}

func NewRing(o Options) *Ring {
	o = o.withDefaults()
	return &Ring{
		clk:        o.Clock,
		timer:      timing.NewIntervalTimer(o.Clock, o.RingFrameUs),
		pal:        o.Palette,
		edge:       o.Edge,
		hz:         o.RingHz,
		blur:       o.Blur,
		brightness: o.Brightness,
	}
}

func (d *Ring) Name() string { return "ring" }

func (d *Ring) Setup(f *frame.Frame) {
	d.f = f
	if d.soft == nil || !d.soft.SameSize(f) {
		d.soft = frame.New(f.Columns, f.Rings)
		d.conv = filter.NewConvolver(f.Columns, f.Rings)
	}
	f.Fill(pixel.Black)
	d.t0 = d.clk.Micros()
	d.timer.Reset()
}

func (d *Ring) Tick() {
	if d.f == nil || d.f.Rings == 0 || !d.timer.Check() {
		return
	}
	d.timer.Reset()

	vec.ScaleColors(d.f.Pix, d.f.Pix, ringDecay)

	ring := d.Lit()
	c := d.pal.At(d.hue).Scale(d.brightness)
	for col := 0; col < d.f.Columns; col++ {
		d.f.Set(col, ring, c)
	}

	if d.blur <= 0 {
		return
	}
	if err := d.conv.BlurEdge(d.soft, d.f, d.edge); err != nil {
		return
	}
	for i, p := range d.f.Pix {
		d.f.Pix[i] = pixel.Lerp(p, d.soft.Pix[i], d.blur)
	}
}

func (d *Ring) HandleKeys(keys, diff uint16) {
	if k, ok := FirstPress(keys, diff); ok {
		d.hue = float32(k) / NumKeys
	}
}

// Lit is the ring the beat wave currently points at.
func (d *Ring) Lit() int {
	u := beat.Fraction(beat.Unit(d.clk, d.hz, d.t0))
	return int(u*float32(d.f.Rings-1) + 0.5)
}
