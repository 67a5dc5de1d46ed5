// Package clock paces simulation generations inside frame-driven loops.
package clock

import "time"

// DefaultPeriod is the generation cadence used when none is configured.
const DefaultPeriod = 500 * time.Millisecond

// FixedStep decides when a frame-driven loop should advance the simulation,
// so generations run at a steady period independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
}

// NewFixedStep constructs a FixedStep that fires once per period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetPeriod(period)
	return fs
}

// SetPeriod changes the cadence. Non-positive periods fall back to DefaultPeriod.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	f.step = period
}

// Period returns the current cadence.
func (f *FixedStep) Period() time.Duration { return f.step }

// Pause stops ShouldStep from firing until Resume.
func (f *FixedStep) Pause() { f.paused = true }

// Resume restarts the cadence with a full period before the next step.
func (f *FixedStep) Resume() {
	f.paused = false
	f.accumulator = 0
	f.last = time.Time{}
}

// Toggle flips between paused and running and reports the new paused state.
func (f *FixedStep) Toggle() bool {
	if f.paused {
		f.Resume()
	} else {
		f.Pause()
	}
	return f.paused
}

// Paused reports whether the cadence is paused.
func (f *FixedStep) Paused() bool { return f.paused }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.shouldStepAt(time.Now())
}

func (f *FixedStep) shouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if f.paused {
		return false
	}
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// at most one step per call; a stall's backlog is dropped
		if f.accumulator >= f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
