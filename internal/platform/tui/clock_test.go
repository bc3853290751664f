package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockFirstFramePrimes(t *testing.T) {
	c := NewFrameClock(60, DefaultMaxFrame)
	assert.Equal(t, 0, c.Advance(time.Unix(100, 0)))
	assert.Zero(t, c.Pending())
}

func TestFrameClockCarriesRemainder(t *testing.T) {
	c := NewFrameClock(60, DefaultMaxFrame)
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	// Two and a half steps.
	n := c.Advance(t0.Add(c.Step * 5 / 2))
	assert.Equal(t, 2, n)
	assert.Equal(t, c.Step/2, c.Pending())

	// The carried half plus another half makes one more step.
	n = c.Advance(t0.Add(c.Step * 3))
	assert.Equal(t, 1, n)
	assert.Zero(t, c.Pending())
}

func TestFrameClockCapsLongFrames(t *testing.T) {
	c := NewFrameClock(60, 250*time.Millisecond)
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	n := c.Advance(t0.Add(5 * time.Second))
	assert.Equal(t, 15, n, "a stalled frame should only feed max_frame worth of steps")
	assert.Less(t, c.Pending(), c.Step)
}

func TestFrameClockIgnoresBackwardsTime(t *testing.T) {
	c := NewFrameClock(60, DefaultMaxFrame)
	t0 := time.Unix(100, 0)
	c.Advance(t0)

	assert.Equal(t, 0, c.Advance(t0.Add(-time.Second)))
	assert.Zero(t, c.Pending())
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(30, DefaultMaxFrame)
	t0 := time.Unix(100, 0)
	c.Advance(t0)
	c.Advance(t0.Add(c.Step / 2))
	assert.NotZero(t, c.Pending())

	c.Reset()
	assert.Zero(t, c.Pending())
	assert.Equal(t, 0, c.Advance(t0.Add(time.Hour)), "first frame after reset only primes")
}

func TestFrameClockDefaultsTickRate(t *testing.T) {
	c := NewFrameClock(0, 0)
	assert.Equal(t, time.Second/60, c.Step)
}
