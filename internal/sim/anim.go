package sim

// frameTimer advances a sprite frame index once per interval of elapsed
// milliseconds. It knows nothing about drawing.
type frameTimer struct {
	frame    int
	elapsed  float64
	interval float64
}

// advance adds dt and reports whether the frame index moved forward.
// The accumulator resets to zero on advance, so at most one frame is
// stepped per call.
func (ft *frameTimer) advance(dt float64) bool {
	ft.elapsed += dt
	if ft.elapsed <= ft.interval {
		return false
	}
	ft.frame++
	ft.elapsed = 0
	return true
}
