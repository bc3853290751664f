package tui

import "time"

// FrameClock converts wall-clock frames into a whole number of fixed
// simulation steps. Leftover time is carried to the next frame, and a
// single frame never consumes more than MaxFrame.
type FrameClock struct {
	Step     time.Duration
	MaxFrame time.Duration

	last time.Time
	acc  time.Duration
}

// NewFrameClock creates a clock stepping at tickRate steps per second.
func NewFrameClock(tickRate int, maxFrame time.Duration) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		Step:     time.Second / time.Duration(tickRate),
		MaxFrame: maxFrame,
	}
}

// Advance records a frame at now and returns how many steps to run.
// The first frame only primes the clock.
func (c *FrameClock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	frame := now.Sub(c.last)
	c.last = now
	if frame < 0 {
		frame = 0
	}
	if c.MaxFrame > 0 && frame > c.MaxFrame {
		frame = c.MaxFrame
	}

	c.acc += frame
	n := int(c.acc / c.Step)
	c.acc -= time.Duration(n) * c.Step
	return n
}

// Pending returns the accumulated time not yet consumed by a step.
func (c *FrameClock) Pending() time.Duration {
	return c.acc
}

// Reset forgets the previous frame and any accumulated time.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
	c.acc = 0
}
