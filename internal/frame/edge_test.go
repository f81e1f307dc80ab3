package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

func TestResolveCoord(t *testing.T) {
	tests := []struct {
		name   string
		policy EdgePolicy
		v, fb  int
		want   int
		wantOK bool
	}{
		{"in range", EdgeBlack, 3, 0, 3, true},
		{"wrap low", EdgeWrap, -1, 0, 4, true},
		{"wrap high", EdgeWrap, 5, 4, 0, true},
		{"wrap far", EdgeWrap, -7, 0, 3, true},
		{"reflect low", EdgeReflect, -1, 0, 0, true},
		{"reflect low 2", EdgeReflect, -2, 0, 1, true},
		{"reflect high", EdgeReflect, 5, 4, 4, true},
		{"reflect high 2", EdgeReflect, 6, 4, 3, true},
		{"reflect far high clamps to high edge", EdgeReflect, 40, 4, 4, true},
		{"reflect far low clamps to low edge", EdgeReflect, -40, 0, 0, true},
		{"copy", EdgeCopy, -1, 2, 2, true},
		{"black", EdgeBlack, -1, 0, 0, false},
		{"unknown is black", EdgePolicy(99), 7, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCoord(tt.policy, tt.v, tt.fb, 5)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	f := New(3, 2)
	for i := range f.Pix {
		f.Pix[i] = pixel.Color{R: uint16(i + 1)}
	}

	assert.Equal(t, f.Pixel(2, 0), Resolve(EdgeWrap, f, -1, 0, 0, 0))
	assert.Equal(t, f.Pixel(0, 0), Resolve(EdgeReflect, f, -1, 0, 0, 0))
	assert.Equal(t, f.Pixel(1, 1), Resolve(EdgeCopy, f, 1, 2, 1, 1))
	assert.Equal(t, pixel.Black, Resolve(EdgeBlack, f, 3, 1, 2, 1))

	// both axes out at once
	assert.Equal(t, f.Pixel(2, 1), Resolve(EdgeWrap, f, -1, -1, 0, 0))
}

func TestEdgePolicyText(t *testing.T) {
	for _, p := range []EdgePolicy{EdgeWrap, EdgeReflect, EdgeCopy, EdgeBlack} {
		b, err := p.MarshalText()
		require.NoError(t, err)
		var q EdgePolicy
		require.NoError(t, q.UnmarshalText(b))
		assert.Equal(t, p, q)
	}
	_, err := ParseEdgePolicy("smear")
	assert.Error(t, err)
}
