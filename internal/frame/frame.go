// Package frame addresses the wheel's pixel buffer. A wheel is unwrapped into
// a rectangle: columns are the spokes swept during one rotation, rings are the
// concentric circles from hub to rim. Pixels are stored column by column, so
// one column's rings are contiguous and can be shifted out as a unit.
package frame

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

var ErrSize = errors.New("frame: buffer length does not match columns*rings")

// IndexAt maps (column, ring) to a linear offset. ring must be in [0, rings);
// column is not checked here.
func IndexAt(rings, column, ring int) int {
	return rings*column + ring
}

// Frame is a fixed-size view over a pixel buffer. Operations on it never
// allocate or resize Pix.
type Frame struct {
	Columns int
	Rings   int
	Pix     []pixel.Color
}

// New allocates a black frame.
func New(columns, rings int) *Frame {
	if columns < 0 || rings < 0 {
		panic(fmt.Sprintf("frame: negative size %dx%d", columns, rings))
	}
	return &Frame{Columns: columns, Rings: rings, Pix: make([]pixel.Color, columns*rings)}
}

// View wraps an existing buffer, typically one owned by a driver.
func View(columns, rings int, pix []pixel.Color) (*Frame, error) {
	if columns < 0 || rings < 0 || len(pix) != columns*rings {
		return nil, fmt.Errorf("%w: %dx%d over %d pixels", ErrSize, columns, rings, len(pix))
	}
	return &Frame{Columns: columns, Rings: rings, Pix: pix}, nil
}

func (f *Frame) Len() int { return len(f.Pix) }

func (f *Frame) Index(column, ring int) int {
	return IndexAt(f.Rings, column, ring)
}

// InBounds reports whether (column, ring) lies inside the frame.
func (f *Frame) InBounds(column, ring int) bool {
	return column >= 0 && column < f.Columns && ring >= 0 && ring < f.Rings
}

func (f *Frame) Pixel(column, ring int) pixel.Color {
	return f.Pix[f.Index(column, ring)]
}

func (f *Frame) Set(column, ring int, c pixel.Color) {
	f.Pix[f.Index(column, ring)] = c
}

// Column returns the rings of one column, hub first. The slice aliases Pix.
func (f *Frame) Column(column int) []pixel.Color {
	i := f.Index(column, 0)
	return f.Pix[i : i+f.Rings : i+f.Rings]
}

// WrapColumn folds any column number onto the wheel.
func (f *Frame) WrapColumn(column int) int {
	if f.Columns == 0 {
		return 0
	}
	column %= f.Columns
	if column < 0 {
		column += f.Columns
	}
	return column
}

func (f *Frame) SameSize(o *Frame) bool {
	return f.Columns == o.Columns && f.Rings == o.Rings && len(f.Pix) == len(o.Pix)
}

// Fill paints every pixel c.
func (f *Frame) Fill(c pixel.Color) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// CopyFrom copies o's pixels into f. The frames must be the same size.
func (f *Frame) CopyFrom(o *Frame) error {
	if !f.SameSize(o) {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrSize, o.Columns, o.Rings, f.Columns, f.Rings)
	}
	copy(f.Pix, o.Pix)
	return nil
}

// Frame is also an image.Image with x as the column and y as the ring, so it
// can be encoded or handed to anything that draws images.

func (f *Frame) ColorModel() color.Model { return pixel.Model }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Columns, f.Rings) }

func (f *Frame) At(x, y int) color.Color {
	if !f.InBounds(x, y) {
		return pixel.Black
	}
	return f.Pixel(x, y)
}
