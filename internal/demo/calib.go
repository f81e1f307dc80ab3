package demo

import (
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

type CalibKind int

const (
	IndexSweep CalibKind = iota // one pixel at a time in buffer order
	RGBChannels                 // whole wheel red, then green, then blue
	RingSweep                   // one ring at a time, hub outwards
	calibKinds
)

func (k CalibKind) String() string {
	switch k {
	case IndexSweep:
		return "index_sweep"
	case RGBChannels:
		return "rgb_channels"
	case RingSweep:
		return "ring_sweep"
	}
	return "unknown"
}

// Calib walks through wiring checks, one step every few ticks, then starts
// over with the next check. Any key restarts the current check.
type Calib struct {
	f          *frame.Frame
	step       timing.FrameTimer
	kind       CalibKind
	n          int
	brightness float32
}

func NewCalib(o Options) *Calib {
	o = o.withDefaults()
	return &Calib{
		step:       timing.NewFrameTimer(o.CalibStepTicks),
		brightness: o.Brightness,
	}
}

func (d *Calib) Name() string { return "calib" }

func (d *Calib) Setup(f *frame.Frame) {
	d.f = f
	d.kind = IndexSweep
	d.n = 0
	d.step.Reset()
	d.paint()
}

func (d *Calib) Tick() {
	if d.f == nil {
		return
	}
	if d.step.Advance(); !d.step.Ready() {
		return
	}
	d.step.Reset()
	d.n++
	if d.n >= d.steps() {
		d.kind = (d.kind + 1) % calibKinds
		d.n = 0
	}
	d.paint()
}

func (d *Calib) HandleKeys(keys, diff uint16) {
	if _, ok := FirstPress(keys, diff); ok && d.f != nil {
		d.n = 0
		d.step.Reset()
		d.paint()
	}
}

// State reports the running check and its step.
func (d *Calib) State() (CalibKind, int) { return d.kind, d.n }

func (d *Calib) steps() int {
	switch d.kind {
	case IndexSweep:
		return d.f.Len()
	case RGBChannels:
		return 3
	case RingSweep:
		return d.f.Rings
	}
	return 1
}

func (d *Calib) paint() {
	d.f.Fill(pixel.Black)
	white := palette.White.Scale(d.brightness)
	switch d.kind {
	case IndexSweep:
		if d.n < d.f.Len() {
			d.f.Pix[d.n] = white
		}
	case RGBChannels:
		d.f.Fill(palette.RGB.Stop(d.n).Scale(d.brightness))
	case RingSweep:
		if d.n >= d.f.Rings {
			return
		}
		for col := 0; col < d.f.Columns; col++ {
			d.f.Set(col, d.n, palette.Cyan.Scale(d.brightness))
		}
	}
}
