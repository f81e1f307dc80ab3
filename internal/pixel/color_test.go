package pixel_test

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

var channelSamples = []uint16{0, 1, 2, 50, 100, 0x00FF, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF}

var TestScaleIsExpectedColor = []struct {
	Start  Color
	Factor float32
	Expect Color
}{
	{Color{100, 200, 300}, 1.0, Color{100, 200, 300}},
	{Color{100, 200, 300}, 0.5, Color{50, 100, 150}},
	{Color{100, 200, 300}, 0, Black},
	{Color{100, 200, 300}, -2, Black},
	{Color{0x8000, 0x10, 0}, 2.0, Color{Max, 0x20, 0}},
	{Color{0xFFFF, 0xFFFF, 0xFFFF}, 1.5, White},
}

func TestQAdd16NeverWraps(t *testing.T) {
	for _, a := range channelSamples {
		for _, b := range channelSamples {
			got := QAdd16(a, b)
			if uint32(a)+uint32(b) > 0xFFFF {
				assert.Equal(t, Max, got, "%d+%d", a, b)
				continue
			}
			assert.GreaterOrEqual(t, got, a)
			assert.GreaterOrEqual(t, got, b)
			assert.Equal(t, a+b, got)
		}
	}
}

func TestQSub16ClampsAtZero(t *testing.T) {
	assert.Equal(t, uint16(0), QSub16(0, 50))
	assert.Equal(t, uint16(50), QSub16(100, 50))
	assert.Equal(t, uint16(65485), QSub16(65535, 50))
	assert.Equal(t, uint16(0), QSub16(49, 50))
}

func TestQMul16(t *testing.T) {
	assert.Equal(t, uint16(600), QMul16(20, 30))
	assert.Equal(t, Max, QMul16(0x100, 0x100))
	assert.Equal(t, uint16(0), QMul16(0, Max))
}

func TestColorScale(t *testing.T) {
	for k, v := range TestScaleIsExpectedColor {
		t.Run("Scale"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, v.Start.Scale(v.Factor))
		})
	}
}

func TestScaleIdentityAndZero(t *testing.T) {
	for _, r := range channelSamples {
		c := Color{r, Max - r, r / 2}
		assert.Equal(t, c, c.Scale(1.0))
		assert.Equal(t, Black, c.Scale(0.0))
		assert.Equal(t, Black, c.Scale(-0.25))
	}
}

func TestColorArithmeticSaturates(t *testing.T) {
	a := Color{0xFFF0, 10, 0}
	b := Color{0x0020, 5, 7}

	assert.Equal(t, Color{Max, 15, 7}, a.Add(b))
	assert.Equal(t, Color{0xFFD0, 5, 0}, a.Sub(b))
	assert.Equal(t, Color{Max, 50, 0}, a.Mul(b))
	assert.Equal(t, Color{0xFFF5, 0x0F, 0x05}, a.AddScalar(5))
	assert.Equal(t, Color{0xFFE6, 0, 0}, a.SubScalar(10))
}

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]Color{
		{Black, White},
		{Color{1, 2, 3}, Color{0xFFFF, 0x8000, 0}},
		{Color{0x1234, 0x5678, 0x9ABC}, Color{0x9ABC, 0x1234, 0x5678}},
	}
	for _, p := range pairs {
		assert.Equal(t, p[0], Lerp(p[0], p[1], 0))
		assert.Equal(t, p[1], Lerp(p[0], p[1], 1))
		assert.Equal(t, p[0], Lerp(p[0], p[1], -3), "t clamps low")
		assert.Equal(t, p[1], Lerp(p[0], p[1], 7), "t clamps high")
	}
	assert.Equal(t, Color{50, 100, 0}, Lerp(Color{100, 0, 0}, Color{0, 200, 0}, 0.5))
	assert.Equal(t, Color{100, 0, 0}, LerpU16(Color{100, 0, 0}, Color{0, 200, 0}, 0))
	assert.Equal(t, Color{0, 200, 0}, LerpU16(Color{100, 0, 0}, Color{0, 200, 0}, Max))
}

func TestAverages(t *testing.T) {
	assert.Equal(t, Color{96, 48, 0}, Average(Color{100, 0, 0}, Color{100, 100, 0}))

	mid := Color{1000, 2000, 3000}
	assert.Equal(t, mid, Average3(White, mid, White, 0), "amount 0 keeps the center")

	got := Average3(Color{3000, 0, 0}, Color{3000, 0, 0}, Color{3000, 0, 0}, 1)
	assert.InDelta(t, 3000, int(got.R), 3)
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = Color{0x1234, 0x5678, 0x9ABC}
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0x1234, 0x5678, 0x9ABC, 0xFFFF}, []uint32{r, g, b, a})

	assert.Equal(t, Color{0xFFFF, 0, 0x8080}, Model.Convert(color.NRGBA{R: 0xFF, B: 0x80, A: 0xFF}))
	assert.Equal(t, Color{0xABAB, 0, 0x0101}, From8(0xAB, 0, 1))

	r8, g8, b8 := Color{0xABCD, 0x00FF, 0xFF00}.RGB8()
	assert.Equal(t, []uint8{0xAB, 0x00, 0xFF}, []uint8{r8, g8, b8})
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "0x00FF, 0x007F, 0x0000", Color{0xFF, 0x7F, 0}.String())
}
