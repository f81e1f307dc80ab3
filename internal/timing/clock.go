// Package timing paces animation updates. Both timers are poll based: nothing
// here sleeps or spawns goroutines.
package timing

import (
	"time"
)

// Clock reports elapsed microseconds on a free-running 32-bit counter. It
// wraps roughly every 71.6 minutes.
type Clock interface {
	Micros() uint32
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() uint32

func (f ClockFunc) Micros() uint32 { return f() }

// SystemClock counts microseconds since it was created, truncated to 32 bits
// the same way a microcontroller's micros() counter is.
type SystemClock struct {
	t0 time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{t0: time.Now()}
}

func (c *SystemClock) Micros() uint32 {
	return uint32(time.Since(c.t0).Microseconds())
}

// ManualClock only moves when told to. Used by the simulator and tests.
type ManualClock struct {
	now uint32
}

func NewManualClock(start uint32) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Micros() uint32 { return c.now }

func (c *ManualClock) Set(us uint32) { c.now = us }

// Advance moves the clock forward, wrapping like the hardware counter.
func (c *ManualClock) Advance(us uint32) { c.now += us }

// Micros converts a duration to whole microseconds, saturating at the
// 32-bit range.
func Micros(d time.Duration) uint32 {
	us := d.Microseconds()
	switch {
	case us <= 0:
		return 0
	case us > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(us)
}
