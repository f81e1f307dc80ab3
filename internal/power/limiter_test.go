package power

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
)

func whites(n int) []pixel.Color {
	buf := make([]pixel.Color, n)
	for i := range buf {
		buf[i] = pixel.White
	}
	return buf
}

func TestBudgetClamp(t *testing.T) {
	// 10 LEDs at 60 mA each against a 300 mA budget
	buf := whites(10)
	l := Limiter{WhiteCap: 3, ChanMA: 20, BudgetMA: 300, Knee: 0.9}
	assert.InDelta(t, 600, l.Estimate(buf), 1e-6)

	s := l.Apply(buf)
	assert.Less(t, s, float32(0.5))
	assert.LessOrEqual(t, l.Estimate(buf), 300.1)
	assert.Greater(t, l.Estimate(buf), 270.0)
}

func TestUnderKneeUntouched(t *testing.T) {
	buf := whites(4) // 240 mA
	l := Limiter{ChanMA: 20, BudgetMA: 300, Knee: 0.9}
	assert.Equal(t, float32(1), l.Apply(buf))
	assert.Equal(t, whites(4), buf)
}

func TestKneeRegionIsCompressed(t *testing.T) {
	buf := whites(5) // 300 mA, exactly the budget
	l := Limiter{ChanMA: 20, BudgetMA: 300, Knee: 0.8}
	s := l.Apply(buf)
	assert.Less(t, s, float32(1))
	assert.Less(t, l.Estimate(buf), 300.0)
	assert.Greater(t, l.Estimate(buf), 240.0)
}

func TestWhiteCap(t *testing.T) {
	buf := []pixel.Color{pixel.White, {R: 1000}}
	l := Limiter{WhiteCap: 1.5}
	l.Apply(buf)
	sum := int(buf[0].R) + int(buf[0].G) + int(buf[0].B)
	full := float32(pixel.Max)
	assert.LessOrEqual(t, sum, int(1.5*full))
	assert.Greater(t, sum, int(1.49*full))
	assert.Equal(t, pixel.Color{R: 1000}, buf[1])
}

func TestEnabled(t *testing.T) {
	assert.False(t, Default().Enabled())
	assert.True(t, Limiter{BudgetMA: 1}.Enabled())
	assert.True(t, Limiter{WhiteCap: 2}.Enabled())
}
