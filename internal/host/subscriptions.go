package host

// Subscriptions collects the release functions of every callback registration
// a decoration holds, so teardown releases them all exactly once.
type Subscriptions struct {
	cancels []func()
	closed  bool
}

// Add records a release function. A nil cancel is ignored.
func (s *Subscriptions) Add(cancel func()) {
	if cancel == nil || s.closed {
		return
	}
	s.cancels = append(s.cancels, cancel)
}

// Close releases every registration in reverse order. Safe to call more than
// once; later calls are no-ops.
func (s *Subscriptions) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
	s.cancels = nil
}
