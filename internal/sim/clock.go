package sim

// Clock turns scheduler timestamps into per-frame deltas (ms).
type Clock struct {
	last    float64
	started bool
}

// Tick records ts and returns the time since the previous tick. The first
// tick after construction or Reset yields 0, and a timestamp that runs
// backwards yields 0 rather than a negative delta.
func (c *Clock) Tick(ts float64) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}
	dt := ts - c.last
	c.last = ts
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the last timestamp.
func (c *Clock) Reset() {
	c.last = 0
	c.started = false
}
