package sketchbook

// Clock is the frame counter every animation reads time from. It only moves
// forward, one tick per Advance. The Runner owns the only writable Clock.
type Clock struct {
	tick int
}

// Advance moves the clock forward by exactly one tick and returns the new tick.
func (c *Clock) Advance() int {
	c.tick++
	return c.tick
}

// Now returns the current tick.
func (c *Clock) Now() int {
	return c.tick
}

// Progress returns the normalized elapsed fraction of an animation that began
// at start and lasts duration ticks, clamped to [0, 1].
func (c *Clock) Progress(start, duration int) float64 {
	return Progress(c.tick, start, duration)
}

// Progress computes clamp((now-start)/duration, 0, 1). A non-positive
// duration is treated as already finished.
func Progress(now, start, duration int) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp01(float64(now-start) / float64(duration))
}
