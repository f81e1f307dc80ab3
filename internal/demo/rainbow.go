package demo

import (
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

// Rainbow paints the palette once around the wheel and turns it by one column
// every few ticks. A key press reverses the direction.
type Rainbow struct {
	f          *frame.Frame
	step       timing.FrameTimer
	pal        palette.Palette
	offset     int
	dir        int
	brightness float32
}

func NewRainbow(o Options) *Rainbow {
	o = o.withDefaults()
	return &Rainbow{
		step:       timing.NewFrameTimer(o.RainbowStepTicks),
		pal:        o.Palette,
		dir:        1,
		brightness: o.Brightness,
	}
}

func (d *Rainbow) Name() string { return "rainbow" }

func (d *Rainbow) Setup(f *frame.Frame) {
	d.f = f
	d.offset = 0
	d.step.Reset()
	d.paint()
}

func (d *Rainbow) Tick() {
	if d.f == nil {
		return
	}
	if d.step.Advance(); !d.step.Ready() {
		return
	}
	d.step.Reset()
	d.offset = d.f.WrapColumn(d.offset + d.dir)
	d.paint()
}

func (d *Rainbow) HandleKeys(keys, diff uint16) {
	if _, ok := FirstPress(keys, diff); ok {
		d.dir = -d.dir
	}
}

func (d *Rainbow) Offset() int { return d.offset }

func (d *Rainbow) paint() {
	cols := d.f.Columns
	for col := 0; col < cols; col++ {
		percent := float32((col+d.offset)%cols) / float32(cols)
		c := d.pal.At(percent).Scale(d.brightness)
		column := d.f.Column(col)
		for ring := range column {
			column[ring] = c
		}
	}
}
