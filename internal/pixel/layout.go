package pixel

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Layout is any 3-field channel ordering that converts to the canonical Color.
// Add an ordering by declaring a struct with a Color method.
type Layout interface {
	Color() Color
}

type RGB struct{ R, G, B uint16 }
type RBG struct{ R, B, G uint16 }
type BGR struct{ B, G, R uint16 }
type BRG struct{ B, R, G uint16 }
type GBR struct{ G, B, R uint16 }
type GRB struct{ G, R, B uint16 }

func (p RGB) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }
func (p RBG) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }
func (p BGR) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }
func (p BRG) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }
func (p GBR) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }
func (p GRB) Color() Color { return Color{R: p.R, G: p.G, B: p.B} }

func ToRGB(c Color) RGB { return RGB{R: c.R, G: c.G, B: c.B} }
func ToRBG(c Color) RBG { return RBG{R: c.R, B: c.B, G: c.G} }
func ToBGR(c Color) BGR { return BGR{B: c.B, G: c.G, R: c.R} }
func ToBRG(c Color) BRG { return BRG{B: c.B, R: c.R, G: c.G} }
func ToGBR(c Color) GBR { return GBR{G: c.G, B: c.B, R: c.R} }
func ToGRB(c Color) GRB { return GRB{G: c.G, R: c.R, B: c.B} }

// Order selects a channel ordering at runtime, for drivers whose byte order
// comes from configuration.
type Order uint8

const (
	OrderRGB Order = iota
	OrderRBG
	OrderBGR
	OrderBRG
	OrderGBR
	OrderGRB
)

var orderNames = [...]string{"RGB", "RBG", "BGR", "BRG", "GBR", "GRB"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

func ParseOrder(s string) (Order, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == u {
			return Order(i), nil
		}
	}
	return OrderRGB, fmt.Errorf("unknown color order %q", s)
}

func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Order) UnmarshalText(b []byte) error {
	v, err := ParseOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Channels returns c's channels in wire order.
func (o Order) Channels(c Color) [3]uint16 {
	switch o {
	case OrderRBG:
		return [3]uint16{c.R, c.B, c.G}
	case OrderBGR:
		return [3]uint16{c.B, c.G, c.R}
	case OrderBRG:
		return [3]uint16{c.B, c.R, c.G}
	case OrderGBR:
		return [3]uint16{c.G, c.B, c.R}
	case OrderGRB:
		return [3]uint16{c.G, c.R, c.B}
	default:
		return [3]uint16{c.R, c.G, c.B}
	}
}

// Color reads three wire-ordered channels back into a Color.
func (o Order) Color(ch [3]uint16) Color {
	switch o {
	case OrderRBG:
		return RBG{ch[0], ch[1], ch[2]}.Color()
	case OrderBGR:
		return BGR{ch[0], ch[1], ch[2]}.Color()
	case OrderBRG:
		return BRG{ch[0], ch[1], ch[2]}.Color()
	case OrderGBR:
		return GBR{ch[0], ch[1], ch[2]}.Color()
	case OrderGRB:
		return GRB{ch[0], ch[1], ch[2]}.Color()
	default:
		return RGB{ch[0], ch[1], ch[2]}.Color()
	}
}

// Put writes c as six big-endian bytes in wire order.
func (o Order) Put(dst []byte, c Color) {
	ch := o.Channels(c)
	_ = dst[5]
	binary.BigEndian.PutUint16(dst[0:], ch[0])
	binary.BigEndian.PutUint16(dst[2:], ch[1])
	binary.BigEndian.PutUint16(dst[4:], ch[2])
}

// Put8 writes the high byte of each channel in wire order.
func (o Order) Put8(dst []byte, c Color) {
	ch := o.Channels(c)
	_ = dst[2]
	dst[0], dst[1], dst[2] = byte(ch[0]>>8), byte(ch[1]>>8), byte(ch[2]>>8)
}

// Pack writes src into dst as raw channels, three per pixel, in the given
// order. dst must hold at least 3*len(src) values.
func Pack(dst []uint16, src []Color, o Order) {
	if len(src) == 0 {
		return
	}
	_ = dst[3*len(src)-1]
	for i, c := range src {
		ch := o.Channels(c)
		dst[i*3+0] = ch[0]
		dst[i*3+1] = ch[1]
		dst[i*3+2] = ch[2]
	}
}

// Unpack is the inverse of Pack.
func Unpack(dst []Color, src []uint16, o Order) {
	if len(dst) == 0 {
		return
	}
	_ = src[3*len(dst)-1]
	for i := range dst {
		dst[i] = o.Color([3]uint16{src[i*3+0], src[i*3+1], src[i*3+2]})
	}
}
