package timing

// FrameTimer counts ticks against a target. It is its own tick source: every
// call to Advance while waiting counts one tick, so it must be advanced exactly
// once per logical tick and from one place only.
type FrameTimer struct {
	count  uint32
	target uint32
}

func NewFrameTimer(target uint32) FrameTimer {
	return FrameTimer{target: target}
}

// Advance reports whether the target has been reached. While it has not, the
// call itself counts as one elapsed tick.
func (t *FrameTimer) Advance() bool {
	if t.count >= t.target {
		return true
	}
	t.count++
	return false
}

// Ready is Advance without the side effect.
func (t *FrameTimer) Ready() bool {
	return t.count >= t.target
}

func (t *FrameTimer) Reset() {
	t.count = 0
}

// Update changes the target and restarts the count.
func (t *FrameTimer) Update(target uint32) {
	t.target = target
	t.count = 0
}

func (t *FrameTimer) Count() uint32  { return t.count }
func (t *FrameTimer) Target() uint32 { return t.target }

// IntervalTimer compares elapsed clock time against a duration in
// microseconds. Check has no side effects.
//
// Elapsed time is computed with 32-bit modular subtraction, so the clock
// wrapping between Start and Check is harmless. An interval longer than the
// clock's wrap period (about 4.29e9 µs) aliases and will report early or late;
// keep durations well below it.
type IntervalTimer struct {
	clk      Clock
	start    uint32
	duration uint32
}

// NewIntervalTimer starts a timer of duration µs at the clock's current time.
func NewIntervalTimer(clk Clock, duration uint32) *IntervalTimer {
	return &IntervalTimer{clk: clk, start: clk.Micros(), duration: duration}
}

// Start sets both the start stamp and the duration explicitly.
func (t *IntervalTimer) Start(start, duration uint32) {
	t.start = start
	t.duration = duration
}

func (t *IntervalTimer) Check() bool {
	return t.Elapsed() >= t.duration
}

func (t *IntervalTimer) Elapsed() uint32 {
	return t.clk.Micros() - t.start
}

// Reset restarts the interval from now.
func (t *IntervalTimer) Reset() {
	t.start = t.clk.Micros()
}

// Update sets a new duration and restarts the interval from now.
func (t *IntervalTimer) Update(duration uint32) {
	t.duration = duration
	t.start = t.clk.Micros()
}

func (t *IntervalTimer) Duration() uint32 { return t.duration }
