package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimerSequence(t *testing.T) {
	for _, target := range []uint32{0, 1, 3, 10} {
		ft := NewFrameTimer(target)
		for i := uint32(0); i < target; i++ {
			assert.False(t, ft.Advance(), "target %d call %d", target, i)
		}
		for i := 0; i < 5; i++ {
			assert.True(t, ft.Advance(), "target %d stays ready", target)
		}
		assert.Equal(t, target, ft.Count())
	}
}

func TestFrameTimerResetAndUpdate(t *testing.T) {
	ft := NewFrameTimer(2)
	ft.Advance()
	ft.Advance()
	assert.True(t, ft.Ready())

	ft.Reset()
	assert.False(t, ft.Ready())
	assert.Equal(t, uint32(0), ft.Count())
	assert.False(t, ft.Advance())
	assert.False(t, ft.Advance())
	assert.True(t, ft.Advance())

	ft.Update(1)
	assert.Equal(t, uint32(1), ft.Target())
	assert.Equal(t, uint32(0), ft.Count())
	assert.False(t, ft.Advance())
	assert.True(t, ft.Advance())
}

func TestFrameTimerReadyIsPure(t *testing.T) {
	ft := NewFrameTimer(3)
	for i := 0; i < 10; i++ {
		assert.False(t, ft.Ready())
	}
	assert.Equal(t, uint32(0), ft.Count())
}

func TestIntervalTimerCheckIsPure(t *testing.T) {
	clk := NewManualClock(1000)
	it := NewIntervalTimer(clk, 500)

	assert.Equal(t, it.Check(), it.Check())
	assert.False(t, it.Check())

	clk.Advance(499)
	assert.False(t, it.Check())
	assert.False(t, it.Check())

	clk.Advance(1)
	assert.True(t, it.Check())
	assert.True(t, it.Check())
	assert.Equal(t, uint32(500), it.Elapsed())
}

func TestIntervalTimerResetAndUpdate(t *testing.T) {
	clk := NewManualClock(0)
	it := NewIntervalTimer(clk, 100)
	clk.Advance(150)
	assert.True(t, it.Check())

	it.Reset()
	assert.False(t, it.Check())
	clk.Advance(100)
	assert.True(t, it.Check())

	it.Update(1000)
	assert.Equal(t, uint32(1000), it.Duration())
	assert.False(t, it.Check())
	clk.Advance(999)
	assert.False(t, it.Check())
	clk.Advance(1)
	assert.True(t, it.Check())
}

func TestIntervalTimerAcrossClockWrap(t *testing.T) {
	clk := NewManualClock(^uint32(0) - 10)
	it := NewIntervalTimer(clk, 50)
	clk.Advance(40) // wraps past zero
	assert.False(t, it.Check())
	clk.Advance(10)
	assert.True(t, it.Check())
}

func TestIntervalTimerStart(t *testing.T) {
	clk := NewManualClock(5000)
	var it IntervalTimer
	it.clk = clk
	it.Start(4000, 1000)
	assert.True(t, it.Check())
	it.Start(4500, 1000)
	assert.False(t, it.Check())
}

func TestMicros(t *testing.T) {
	assert.Equal(t, uint32(0), Micros(-time.Second))
	assert.Equal(t, uint32(250000), Micros(250*time.Millisecond))
	assert.Equal(t, ^uint32(0), Micros(100*time.Hour))

	clk := ClockFunc(func() uint32 { return 42 })
	assert.Equal(t, uint32(42), clk.Micros())

	sys := NewSystemClock()
	a := sys.Micros()
	time.Sleep(2 * time.Millisecond)
	assert.Greater(t, sys.Micros(), a)
}
