package main

import "math"

// dayNightClock tracks the phase driving background and palette
// interpolation. The phase advances per tick, not per wall-clock second.
type dayNightClock struct {
	phase float64
}

// advance moves the cycle forward by one tick. The stored phase wraps at 2π;
// only its sinusoid image matters.
func (c *dayNightClock) advance() {
	c.phase += dayPhaseStep
	if c.phase >= 2*math.Pi {
		c.phase -= 2 * math.Pi
	}
}

// blendFactor maps the phase onto the 0..1 day/night interpolation factor.
func (c *dayNightClock) blendFactor() float64 {
	return (math.Sin(c.phase) + 1) / 2
}
