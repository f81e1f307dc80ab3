// Package filter runs separable convolutions over wheel frames.
package filter

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-povwheel/internal/frame"
	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

var (
	ErrSizeMismatch = errors.New("filter: frames differ in size")
	ErrEvenKernel   = errors.New("filter: kernel length must be odd")
	ErrAliased      = errors.New("filter: frames share a buffer")
)

// Kernel is a centered 1D filter: tap i samples offset i-len/2.
type Kernel []float32

func (k Kernel) Validate() error {
	if len(k)%2 == 0 {
		return fmt.Errorf("%w: got %d taps", ErrEvenKernel, len(k))
	}
	return nil
}

// Box returns an n-tap averaging kernel.
func Box(n int) Kernel {
	k := make(Kernel, n)
	for i := range k {
		k[i] = 1 / float32(n)
	}
	return k
}

// ConvolveSeparable filters src along the column axis with kx into scratch,
// then along the ring axis with ky into dst. Taps that fall outside the frame
// are read through edge. Each output channel is summed in float32 and
// saturated to [0, pixel.Max], rounding to nearest.
//
// dst is overwritten. All three frames must be the same size and must not
// share a buffer.
func ConvolveSeparable(dst, scratch, src *frame.Frame, kx, ky Kernel, edge frame.EdgePolicy) error {
	if err := kx.Validate(); err != nil {
		return err
	}
	if err := ky.Validate(); err != nil {
		return err
	}
	if !dst.SameSize(src) || !scratch.SameSize(src) {
		return fmt.Errorf("%w: src %dx%d dst %dx%d scratch %dx%d", ErrSizeMismatch,
			src.Columns, src.Rings, dst.Columns, dst.Rings, scratch.Columns, scratch.Rings)
	}
	if aliased(dst, src) || aliased(scratch, src) || aliased(scratch, dst) {
		return ErrAliased
	}
	pass(scratch, src, kx, edge, true)
	pass(dst, scratch, ky, edge, false)
	return nil
}

func pass(dst, src *frame.Frame, k Kernel, edge frame.EdgePolicy, alongColumns bool) {
	half := len(k) / 2
	for col := 0; col < src.Columns; col++ {
		for ring := 0; ring < src.Rings; ring++ {
			var r, g, b float32
			for i, w := range k {
				c, rg := col, ring
				if alongColumns {
					c += i - half
				} else {
					rg += i - half
				}
				var p pixel.Color
				if src.InBounds(c, rg) {
					p = src.Pixel(c, rg)
				} else {
					p = frame.Resolve(edge, src, c, rg, col, ring)
				}
				r += float32(p.R) * w
				g += float32(p.G) * w
				b += float32(p.B) * w
			}
			dst.Set(col, ring, pixel.Color{R: saturate(r), G: saturate(g), B: saturate(b)})
		}
	}
}

func saturate(v float32) uint16 {
	if !(v > 0) {
		return 0
	}
	v += 0.5
	if v >= float32(pixel.Max) {
		return pixel.Max
	}
	return uint16(v)
}

func aliased(a, b *frame.Frame) bool {
	if a == b {
		return true
	}
	if len(a.Pix) == 0 || len(b.Pix) == 0 {
		return false
	}
	return &a.Pix[0] == &b.Pix[0]
}
