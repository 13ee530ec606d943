package usedrag

// Scheduler is the host's execution context. Raw platform callbacks run
// outside it, so state writes they perform must first re-enter it.
type Scheduler interface {
	// Enter establishes the ambient execution context and returns a func
	// that releases it.
	Enter() (release func())
}

// guarded runs fn inside s's execution context. The context is released
// exactly once on every exit path, including a panic in fn.
func guarded(s Scheduler, fn func()) {
	if s == nil {
		fn()
		return
	}
	release := s.Enter()
	defer release()
	fn()
}
