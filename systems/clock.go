package systems

import (
	"math"
	"time"
)

// Clock reports how much time the host loop has run.
// The swarm moves in fixed per-frame steps; only schedules read the clock.
type Clock interface {
	Elapsed() time.Duration
}

// FrameClock advances by a fixed step each frame.
// Headless runs, the terminal loop and tests drive it with Step.
type FrameClock struct {
	step    time.Duration
	elapsed time.Duration
}

// NewFrameClock creates a clock that advances dt seconds per Step.
func NewFrameClock(dt float64) *FrameClock {
	return &FrameClock{step: time.Duration(math.Round(dt * float64(time.Second)))}
}

// Step advances the clock by one frame.
func (c *FrameClock) Step() {
	c.elapsed += c.step
}

// Advance moves the clock forward by d.
func (c *FrameClock) Advance(d time.Duration) {
	c.elapsed += d
}

// Elapsed implements Clock.
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsed
}

// ClockFunc adapts a seconds-returning function, such as raylib's GetTime, to a Clock.
type ClockFunc func() float64

// Elapsed implements Clock.
func (f ClockFunc) Elapsed() time.Duration {
	return time.Duration(f() * float64(time.Second))
}
