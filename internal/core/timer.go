package core

import "time"

// FixedStep reports when a fixed period has elapsed between simulation ticks.
// The caller polls it once per frame.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per period.
// The first tick fires one full period after the first poll.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	return fs
}

// SetPeriod changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = FrameDelay
	}
	f.step = period
}

// Period returns the current tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// Long stalls are not replayed: at most one tick is reported per poll and
// the backlog is capped at a single period.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
