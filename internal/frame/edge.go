package frame

import (
	"fmt"
	"strings"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

// EdgePolicy decides what a filter reads when a tap falls outside the frame.
type EdgePolicy uint8

const (
	// EdgeWrap folds the coordinate back onto the other side. It is the natural
	// choice for the column axis, which is circular on a spinning wheel.
	EdgeWrap EdgePolicy = iota + 1
	// EdgeReflect mirrors across the nearest edge: -1 reads 0, size reads size-1.
	EdgeReflect
	// EdgeCopy reads the pixel that triggered the lookup (clamp to edge).
	EdgeCopy
	// EdgeBlack reads black.
	EdgeBlack
)

var edgeNames = map[EdgePolicy]string{
	EdgeWrap:    "wrap",
	EdgeReflect: "reflect",
	EdgeCopy:    "copy",
	EdgeBlack:   "black",
}

func (p EdgePolicy) String() string {
	if s, ok := edgeNames[p]; ok {
		return s
	}
	return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
}

func ParseEdgePolicy(s string) (EdgePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, n := range edgeNames {
		if n == s {
			return p, nil
		}
	}
	return EdgeBlack, fmt.Errorf("unknown edge policy %q", s)
}

func (p EdgePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *EdgePolicy) UnmarshalText(b []byte) error {
	v, err := ParseEdgePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ResolveCoord maps coordinate v on an axis of the given size back into
// [0, size). fallback is the in-bounds coordinate that caused the lookup. ok is
// false when the policy has no pixel to offer (black).
func ResolveCoord(p EdgePolicy, v, fallback, size int) (c int, ok bool) {
	if v >= 0 && v < size {
		return v, true
	}
	if size <= 0 {
		return 0, false
	}
	switch p {
	case EdgeWrap:
		v %= size
		if v < 0 {
			v += size
		}
		return v, true
	case EdgeReflect:
		// taps further out than one frame width clamp to the nearest edge
		switch {
		case v < -size:
			return 0, true
		case v < 0:
			return -v - 1, true
		case v >= 2*size:
			return size - 1, true
		default:
			return 2*size - v - 1, true
		}
	case EdgeCopy:
		return fallback, true
	default:
		return 0, false
	}
}

// Resolve reads (column, ring) from f under policy p. Each axis is resolved on
// its own, so a tap past a corner is well defined. Under EdgeBlack any
// out-of-range tap reads pixel.Black.
func Resolve(p EdgePolicy, f *Frame, column, ring, fallbackColumn, fallbackRing int) pixel.Color {
	x, okx := ResolveCoord(p, column, fallbackColumn, f.Columns)
	y, oky := ResolveCoord(p, ring, fallbackRing, f.Rings)
	if !okx || !oky {
		return pixel.Black
	}
	return f.Pixel(x, y)
}
