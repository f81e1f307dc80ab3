// Package pixel holds the 16-bit color value used by every frame buffer on the
// wheel, along with the saturating channel arithmetic it is built on.
package pixel

import (
	"fmt"
	"image/color"
)

// Max is the full-scale value of a single channel.
const Max uint16 = 0xFFFF

// Color is three unsigned 16-bit channels. All arithmetic on it saturates.
type Color struct {
	R, G, B uint16
}

var (
	Black = Color{}
	White = Color{Max, Max, Max}
)

// QAdd16 adds a and b, clamping at Max.
func QAdd16(a, b uint16) uint16 {
	c := uint32(a) + uint32(b)
	if c > uint32(Max) {
		return Max
	}
	return uint16(c)
}

// QSub16 subtracts b from a, clamping at zero.
func QSub16(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

// QMul16 multiplies a and b, clamping at Max.
func QMul16(a, b uint16) uint16 {
	c := uint32(a) * uint32(b)
	if c > uint32(Max) {
		return Max
	}
	return uint16(c)
}

// QScale16 multiplies a by f. Negative (and NaN) factors give zero, results past
// full scale give Max; everything else truncates toward zero.
func QScale16(a uint16, f float32) uint16 {
	if !(f > 0) || a == 0 {
		return 0
	}
	v := float32(a) * f
	if v >= float32(Max) {
		return Max
	}
	return uint16(v)
}

func (c Color) Add(o Color) Color {
	return Color{QAdd16(c.R, o.R), QAdd16(c.G, o.G), QAdd16(c.B, o.B)}
}

func (c Color) AddScalar(v uint16) Color {
	return Color{QAdd16(c.R, v), QAdd16(c.G, v), QAdd16(c.B, v)}
}

func (c Color) Sub(o Color) Color {
	return Color{QSub16(c.R, o.R), QSub16(c.G, o.G), QSub16(c.B, o.B)}
}

func (c Color) SubScalar(v uint16) Color {
	return Color{QSub16(c.R, v), QSub16(c.G, v), QSub16(c.B, v)}
}

func (c Color) Mul(o Color) Color {
	return Color{QMul16(c.R, o.R), QMul16(c.G, o.G), QMul16(c.B, o.B)}
}

// Scale multiplies every channel by f.
func (c Color) Scale(f float32) Color {
	return Color{QScale16(c.R, f), QScale16(c.G, f), QScale16(c.B, f)}
}

// IsBlack reports whether every channel is zero.
func (c Color) IsBlack() bool {
	return c == Black
}

// Lerp blends from a (t=0) to b (t=1). t is clamped to [0,1] and the blend is
// built from Scale and Add so it saturates like every other operation.
func Lerp(a, b Color, t float32) Color {
	if t > 1 {
		t = 1
	} else if t < 0 {
		t = 0
	}
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpU16 is Lerp with a fixed-point fraction where Max means 1.0.
func LerpU16(a, b Color, frac uint16) Color {
	return Lerp(a, b, float32(frac)/float32(Max))
}

// Average mixes two colors at 48% each, so repeated averaging slowly darkens.
func Average(a, b Color) Color {
	return a.Scale(0.48).Add(b.Scale(0.48))
}

// Average3 weights a center pixel against its two neighbours. amount 0 keeps
// only mid; amount 1 spreads almost evenly, minus a 0.05 floor on the sides.
func Average3(l, mid, r Color, amount float32) Color {
	if amount > 1 {
		amount = 1
	} else if amount < 0 {
		amount = 0
	}
	sides := (amount - 0.05) / 3
	if sides < 0 {
		sides = 0
	}
	center := 1 - sides*2
	return l.Scale(sides).Add(mid.Scale(center)).Add(r.Scale(sides))
}

// RGBA implements color.Color. Channels are already 16 bits wide.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), 0xFFFF
}

// RGB8 returns the top byte of each channel.
func (c Color) RGB8() (r, g, b uint8) {
	return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
}

func (c Color) String() string {
	return fmt.Sprintf("0x%04X, 0x%04X, 0x%04X", c.R, c.G, c.B)
}

// Model converts any color.Color into a Color, dropping alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

func FromColor(c color.Color) Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Color{uint16(r), uint16(g), uint16(b)}
}

// From8 widens 8-bit channels to full scale (0xAB -> 0xABAB).
func From8(r, g, b uint8) Color {
	return Color{uint16(r) * 0x101, uint16(g) * 0x101, uint16(b) * 0x101}
}
