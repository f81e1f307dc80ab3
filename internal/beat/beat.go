// Package beat turns elapsed clock time into periodic waveforms.
package beat

import (
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

// phaseScale is 2^32 / 1e6, the 32-bit phase advance per microsecond at 1 Hz.
const phaseScale = 4295

// Beat16 is a sawtooth: the phase of an hz oscillator started at offset, as a
// 16-bit fraction of one cycle. The product is taken modulo 2^32, which is
// exactly the phase wrap, so clock wraps are harmless.
func Beat16(clk timing.Clock, hz float32, offset uint32) uint16 {
	return Phase(clk.Micros()-offset, hz)
}

// Phase is Beat16 for a known elapsed time in microseconds.
func Phase(elapsed uint32, hz float32) uint16 {
	if !(hz > 0) {
		return 0
	}
	return uint16((elapsed * uint32(phaseScale*hz)) >> 16)
}

// Unit is a sine-like wave over the full uint16 range, centred at 0x8000 at
// phase zero and rising first.
func Unit(clk timing.Clock, hz float32, offset uint32) uint16 {
	return Wave(Beat16(clk, hz, offset))
}

// Wave evaluates the cubic that stands in for sin() at a 16-bit phase.
func Wave(phase uint16) uint16 {
	x := float32(phase) / 65536
	v := 32767*(20.785*x*(x-0.5)*(x-1)) + 32768
	switch {
	case v <= 0:
		return 0
	case v >= float32(pixel.Max):
		return pixel.Max
	}
	return uint16(v)
}

// Range rescales Unit onto [lo, hi]. When hi < lo the result is pinned to lo.
func Range(clk timing.Clock, hz float32, offset uint32, lo, hi uint16) uint16 {
	return Between(Unit(clk, hz, offset), lo, hi)
}

// Between maps a unit wave value onto [lo, hi].
func Between(unit, lo, hi uint16) uint16 {
	span := (float32(hi) - float32(lo)) / float32(pixel.Max)
	return pixel.QAdd16(pixel.QScale16(unit, span), lo)
}

// Fraction returns the wave as a float in [0,1].
func Fraction(unit uint16) float32 {
	return float32(unit) / float32(pixel.Max)
}
