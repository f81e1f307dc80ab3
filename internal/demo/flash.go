package demo

import (
	"math/rand"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/palette"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

// Flash alternates the whole wheel between the flash color and the previous
// one. A key press promotes the flash color to previous and draws a new one.
type Flash struct {
	f          *frame.Frame
	timer      *timing.IntervalTimer
	choices    palette.Palette
	rnd        *rand.Rand
	flash      pixel.Color
	prev       pixel.Color
	flip       bool
	brightness float32
}

func NewFlash(o Options) *Flash {
	o = o.withDefaults()
	return &Flash{
		timer:      timing.NewIntervalTimer(o.Clock, o.FlashDelayUs),
		choices:    palette.ExceptBlack,
		rnd:        o.Rand,
		flash:      o.FlashColor,
		prev:       palette.Black,
		brightness: o.Brightness,
	}
}

func (d *Flash) Name() string { return "flash" }

func (d *Flash) Setup(f *frame.Frame) {
	d.f = f
	d.flip = false
	f.Fill(pixel.Black)
	d.timer.Reset()
}

func (d *Flash) Tick() {
	if d.f == nil || !d.timer.Check() {
		return
	}
	d.flip = !d.flip
	d.timer.Reset()

	c := d.prev
	if d.flip {
		c = d.flash
	}
	d.f.Fill(c.Scale(d.brightness))
}

func (d *Flash) HandleKeys(keys, diff uint16) {
	if _, ok := FirstPress(keys, diff); !ok {
		return
	}
	d.prev = d.flash
	d.flash = d.choices.Stop(d.rnd.Intn(d.choices.Len()))
}

// Colors reports the current flash and previous colors.
func (d *Flash) Colors() (flash, prev pixel.Color) { return d.flash, d.prev }
