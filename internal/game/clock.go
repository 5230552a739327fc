package game

import "math"

// FrameClock accumulates simulated seconds for shader animation.
type FrameClock struct {
	elapsed float64
}

// Advance adds dt seconds. Negative, NaN and infinite steps are ignored so
// the clock never runs backwards.
func (c *FrameClock) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	c.elapsed += dt
}

// Seconds returns the accumulated time.
func (c *FrameClock) Seconds() float64 {
	return c.elapsed
}
