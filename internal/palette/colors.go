package palette

import (
	"strconv"
	"strings"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// Named colors. Values sit in the low byte of each channel, which is the
// brightness the wheel is calibrated for; scale them up with Color.Scale.
var (
	Black       = pixel.RGB{R: 0x0000, G: 0x0000, B: 0x0000}.Color()
	White       = pixel.RGB{R: 0x00ff, G: 0x00ff, B: 0x00ff}.Color()
	Red         = pixel.RGB{R: 0x00ff, G: 0x0000, B: 0x0000}.Color()
	Orange      = pixel.RGB{R: 0x00ff, G: 0x007f, B: 0x0000}.Color()
	Yellow      = pixel.RGB{R: 0x00ff, G: 0x00ff, B: 0x0000}.Color()
	Chartreuse  = pixel.RGB{R: 0x007f, G: 0x00ff, B: 0x0000}.Color()
	Green       = pixel.RGB{R: 0x0000, G: 0x00ff, B: 0x0000}.Color()
	SpringGreen = pixel.RGB{R: 0x0000, G: 0x00ff, B: 0x007f}.Color()
	Cyan        = pixel.RGB{R: 0x0000, G: 0x00ff, B: 0x00ff}.Color()
	DodgerBlue  = pixel.RGB{R: 0x0000, G: 0x007f, B: 0x00ff}.Color()
	Blue        = pixel.RGB{R: 0x0000, G: 0x0000, B: 0x00ff}.Color()
	Purple      = pixel.RGB{R: 0x007f, G: 0x0000, B: 0x00ff}.Color()
	Violet      = pixel.RGB{R: 0x00ff, G: 0x0000, B: 0x00ff}.Color()
	Magenta     = pixel.RGB{R: 0x00ff, G: 0x0000, B: 0x0080}.Color()
	Indigo      = pixel.RGB{R: 0x002b, G: 0x0006, B: 0x007f}.Color()
	SoftRed     = pixel.RGB{R: 0x0001, G: 0x0000, B: 0x0000}.Color()
	RoyalPurple = pixel.RGB{R: 0x008a, G: 0x0006, B: 0x00cf}.Color()
)

var (
	All = New("all",
		Black, White, Red, Orange, Yellow, Chartreuse, Green,
		SpringGreen, Cyan, DodgerBlue, Blue, Purple, Violet, Magenta)

	ExceptBlack = New("except-black",
		White, Red, Orange, Yellow, Chartreuse, Green, SpringGreen,
		Cyan, DodgerBlue, Blue, Purple, Violet, Magenta, RoyalPurple)

	RGB = New("rgb", Red, Green, Blue)

	Rainbow7 = New("rainbow7", Red, Orange, Yellow, Green, Blue, Indigo, Violet)

	Rainbow12 = New("rainbow12",
		Red, Orange, Yellow, Chartreuse, Green, SpringGreen,
		Cyan, DodgerBlue, Blue, Purple, Violet, Magenta)
)

var builtin = []Palette{All, ExceptBlack, RGB, Rainbow7, Rainbow12}

// ByName finds a built-in palette. "hueN" (for example "hue24") builds an
// N-stop full-saturation hue wheel.
func ByName(name string) (Palette, bool) {
	for _, p := range builtin {
		if p.name == name {
			return p, true
		}
	}
	if rest, ok := strings.CutPrefix(name, "hue"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			return HueWheel(n, 1, 1), true
		}
	}
	return Palette{}, false
}
