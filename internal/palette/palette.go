// Package palette provides the read-only color tables used by the demos and
// interpolated lookups into them.
package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// Palette is an immutable cyclic gradient. The stops are private so nothing
// outside this package can change a shared table.
type Palette struct {
	name  string
	stops []pixel.Color
}

// New copies stops into a palette.
func New(name string, stops ...pixel.Color) Palette {
	s := make([]pixel.Color, len(stops))
	copy(s, stops)
	return Palette{name: name, stops: s}
}

func (p Palette) Name() string { return p.name }
func (p Palette) Len() int     { return len(p.stops) }

// Stop returns stop i, wrapping i onto the table.
func (p Palette) Stop(i int) pixel.Color {
	n := len(p.stops)
	if n == 0 {
		return pixel.Black
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.stops[i]
}

// At interpolates around the palette; see RainbowAt.
func (p Palette) At(percent float32) pixel.Color {
	return RainbowAt(percent, p.stops)
}

// Copy writes the stops into dst and returns how many were written.
func (p Palette) Copy(dst []pixel.Color) int {
	return copy(dst, p.stops)
}

// RainbowAt treats table as a closed loop and returns the color at percent of
// the way around it, linearly interpolating between the two nearest stops.
// percent is wrapped into [0,1), so 1.0 lands back on table[0]. NaN and
// infinities also give table[0].
func RainbowAt(percent float32, table []pixel.Color) pixel.Color {
	n := len(table)
	if n == 0 {
		return pixel.Black
	}
	p := float64(percent)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return table[0]
	}
	p -= math.Floor(p)
	pos := p * float64(n)
	idx := int(pos)
	frac := float32(pos - float64(idx))
	if idx >= n {
		idx, frac = 0, 0
	}
	return pixel.Lerp(table[idx], table[(idx+1)%n], frac)
}

// HueWheel builds n evenly spaced HSV hues at the given saturation and value,
// both in [0,1], at full 16-bit scale.
func HueWheel(n int, s, v float64) Palette {
	stops := make([]pixel.Color, n)
	for i := range stops {
		c := colorful.Hsv(360*float64(i)/float64(n), s, v).Clamped()
		stops[i] = pixel.Color{R: unit16(c.R), G: unit16(c.G), B: unit16(c.B)}
	}
	return Palette{name: fmt.Sprintf("hue%d", n), stops: stops}
}

func unit16(v float64) uint16 {
	return uint16(math.Round(v * float64(pixel.Max)))
}
