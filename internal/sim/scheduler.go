package sim

// FrameFunc is invoked once per displayed frame with a monotonically
// increasing timestamp in milliseconds.
type FrameFunc func(timestampMs float64)

// Scheduler runs a requested FrameFunc on the next display refresh.
// A loop stops simply by not requesting another frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// StepScheduler holds at most one pending frame request and runs it when
// the host steps it: ebiten's Update, a terminal ticker, or a test.
type StepScheduler struct {
	pending  FrameFunc
	requests int
}

func (s *StepScheduler) RequestFrame(fn FrameFunc) {
	s.pending = fn
	s.requests++
}

// Pending reports whether a frame has been requested and not yet run.
func (s *StepScheduler) Pending() bool {
	return s.pending != nil
}

// Step runs the pending frame at ts. It returns false if nothing was pending.
func (s *StepScheduler) Step(ts float64) bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn(ts)
	return true
}

// Requests counts RequestFrame calls since construction.
func (s *StepScheduler) Requests() int {
	return s.requests
}
