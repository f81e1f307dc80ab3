// Package vec has bulk operations over raw channel buffers and color buffers.
// Element counts come from the destination slice; none of them allocate.
package vec

import (
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// Fill copies src into dst element for element. src must be at least as long
// as dst.
func Fill[T any](dst, src []T) {
	mustCover(len(dst), len(src))
	copy(dst, src)
}

// FillMod tiles the first mod elements of src across dst.
func FillMod[T any](dst, src []T, mod int) {
	if mod <= 0 {
		return
	}
	mustCover(mod, len(src))
	for i := range dst {
		dst[i] = src[i%mod]
	}
}

// Broadcast sets every element of dst to v.
func Broadcast[T any](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Add accumulates src into dst without saturation; channels that overflow
// wrap. Use pixel.Color.Add when clamping is needed.
func Add(dst, src []uint16) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] += src[i]
	}
}

// Fade writes src minus amount into dst, clamping at zero.
func Fade(dst, src []uint16, amount uint16) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] = pixel.QSub16(src[i], amount)
	}
}

// Brighten writes src plus amount into dst, clamping at full scale.
func Brighten(dst, src []uint16, amount uint16) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] = pixel.QAdd16(src[i], amount)
	}
}

func FadeColors(dst, src []pixel.Color, amount uint16) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] = src[i].SubScalar(amount)
	}
}

func BrightenColors(dst, src []pixel.Color, amount uint16) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] = src[i].AddScalar(amount)
	}
}

// ScaleColors multiplies every color by f.
func ScaleColors(dst, src []pixel.Color, f float32) {
	mustCover(len(dst), len(src))
	for i := range dst {
		dst[i] = src[i].Scale(f)
	}
}

// Blur smooths src as a ring: each element of dst mixes itself with its left
// and right neighbours, the ends wrapping onto each other. amount is clamped
// to [0,1]; 0 copies src unchanged. dst and src must not overlap.
func Blur(dst, src []pixel.Color, amount float32) {
	n := len(dst)
	mustCover(n, len(src))
	for i := 0; i < n; i++ {
		dst[i] = pixel.Average3(src[(i+1)%n], src[i], src[(i+n-1)%n], amount)
	}
}

func mustCover(want, have int) {
	if have < want {
		panic("vec: source shorter than destination")
	}
}
