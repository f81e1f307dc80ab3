package led

import (
	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// SimDriver logs a compact summary of each frame (average and first pixel)
// and keeps a copy of the last one. Useful headless and in tests.
type SimDriver struct {
	Count int
	Last  *frame.Frame

	log zerolog.Logger
}

func NewSim(columns, rings int, log zerolog.Logger) *SimDriver {
	return &SimDriver{Last: frame.New(columns, rings), log: log}
}

func (d *SimDriver) Write(f *frame.Frame) error {
	if err := checkSize(f, d.Last.Columns, d.Last.Rings); err != nil {
		return err
	}
	d.Count++
	copy(d.Last.Pix, f.Pix)

	if e := d.log.Debug(); e.Enabled() {
		avg := Average(f.Pix)
		var first pixel.Color
		if len(f.Pix) > 0 {
			first = f.Pix[0]
		}
		e.Int("frame", d.Count).
			Stringer("avg", avg).
			Stringer("first", first).
			Msg("sim frame")
	}
	return nil
}

func (d *SimDriver) Close() error { return nil }

// Average is the mean color of pix.
func Average(pix []pixel.Color) pixel.Color {
	if len(pix) == 0 {
		return pixel.Black
	}
	var r, g, b uint64
	for _, c := range pix {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}
	n := uint64(len(pix))
	return pixel.Color{R: uint16(r / n), G: uint16(g / n), B: uint16(b / n)}
}
