package core

import "time"

// MaxRate caps the pass rate so the step interval never rounds to zero.
const MaxRate = 1000

// FixedStep paces simulation passes at a steady rate independent of the
// frame rate of the viewer.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires rate times per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the pass rate. Non-positive rates fall back to 10 per second
// and rates above MaxRate are clamped.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 10
	}
	if rate > MaxRate {
		rate = MaxRate
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current passes per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// ShouldStep reports whether the simulation should advance by one pass.
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
