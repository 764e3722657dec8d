package utils

import "time"

// FixedStep paces generations at a steady rate inside a frame loop that runs
// faster than the simulation, such as a 60 TPS window loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rate steps per second. The
// rate is clamped to [MinTickRate, MaxTickRate].
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the step rate. It is safe to call from the frame loop.
func (f *FixedStep) SetRate(rate int) {
	f.step = time.Second / time.Duration(Clamp(rate, MinTickRate, MaxTickRate))
}

// Rate returns the current steps per second
func (f *FixedStep) Rate() int {
	return int(time.Second / f.step)
}

// Reset drops any accumulated time, e.g. after the simulation was paused.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
