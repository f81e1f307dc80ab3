package filter

import (
	"github.com/coreman2200/funtimes-povwheel/internal/frame"
)

var box3 = [3]float32{1.0 / 3, 1.0 / 3, 1.0 / 3}

// Blur is a 3x3 box blur with black edges.
func Blur(dst, scratch, src *frame.Frame) error {
	return ConvolveSeparable(dst, scratch, src, box3[:], box3[:], frame.EdgeBlack)
}

// Convolver owns the intermediate frame for one frame size, so filtering in
// the render loop does not allocate.
type Convolver struct {
	scratch *frame.Frame
}

func NewConvolver(columns, rings int) *Convolver {
	return &Convolver{scratch: frame.New(columns, rings)}
}

func (c *Convolver) Convolve(dst, src *frame.Frame, kx, ky Kernel, edge frame.EdgePolicy) error {
	return ConvolveSeparable(dst, c.scratch, src, kx, ky, edge)
}

func (c *Convolver) Blur(dst, src *frame.Frame) error {
	return Blur(dst, c.scratch, src)
}

// BlurEdge is Blur with a caller-chosen edge policy; EdgeWrap keeps the seam
// between the last and first column invisible.
func (c *Convolver) BlurEdge(dst, src *frame.Frame, edge frame.EdgePolicy) error {
	return ConvolveSeparable(dst, c.scratch, src, box3[:], box3[:], edge)
}
