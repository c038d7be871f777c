package sim

// Spawner emits one target each time its accumulator passes Interval.
type Spawner struct {
	Interval float64
	acc      float64
}

// Advance adds dt and reports whether a target is due. The accumulator
// resets to zero on spawn, so a long frame produces a single target.
func (s *Spawner) Advance(dt float64) bool {
	s.acc += dt
	if s.acc > s.Interval {
		s.acc = 0
		return true
	}
	return false
}

// Pending returns the accumulated time since the last spawn.
func (s *Spawner) Pending() float64 {
	return s.acc
}

// Reset zeroes the accumulator.
func (s *Spawner) Reset() {
	s.acc = 0
}
