package beat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/timing"
)

func TestPhase(t *testing.T) {
	assert.Equal(t, uint16(0), Phase(0, 1))
	assert.Equal(t, uint16(16384), Phase(250_000, 1))
	assert.Equal(t, uint16(32768), Phase(500_000, 1))
	assert.Equal(t, uint16(0), Phase(1_000_000, 1), "one full cycle")
	assert.Equal(t, uint16(32768), Phase(250_000, 2))
	assert.Equal(t, uint16(0), Phase(123_456, 0))
}

func TestBeat16SurvivesClockWrap(t *testing.T) {
	start := ^uint32(0) - 100_000
	clk := timing.NewManualClock(start)
	clk.Advance(250_000)
	assert.Equal(t, uint16(16384), Beat16(clk, 1, start))
}

func TestWaveShape(t *testing.T) {
	assert.Equal(t, uint16(32768), Wave(0))
	assert.Equal(t, uint16(32768), Wave(32768))
	assert.Greater(t, Wave(16384), uint16(60000))
	assert.Less(t, Wave(49152), uint16(5000))

	peak := uint16(0)
	for p := 0; p < 65536; p += 64 {
		if w := Wave(uint16(p)); w > peak {
			peak = w
		}
	}
	assert.InDelta(t, int(pixel.Max), int(peak), 64)
}

func TestUnitFollowsClock(t *testing.T) {
	clk := timing.NewManualClock(10)
	assert.Equal(t, uint16(32768), Unit(clk, 1, 10))
	clk.Advance(250_000)
	assert.Equal(t, Wave(16384), Unit(clk, 1, 10))
}

func TestRange(t *testing.T) {
	assert.InDelta(t, 2000, int(Between(32768, 1000, 3000)), 1)
	assert.Equal(t, uint16(1000), Between(0, 1000, 3000))
	assert.InDelta(t, 3000, int(Between(pixel.Max, 1000, 3000)), 1)
	assert.Equal(t, uint16(3000), Between(50000, 3000, 1000), "inverted range pins to lo")

	clk := timing.NewManualClock(0)
	assert.InDelta(t, 2000, int(Range(clk, 4, 0, 1000, 3000)), 1)
	assert.InDelta(t, 0.5, Fraction(32768), 1e-3)
}
