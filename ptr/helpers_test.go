package ptr

// pair is the two-field payload used throughout the lifecycle tests.
type pair struct {
	a, b int
}

// newCounted wraps a pair in a Shared handle whose finalizer increments the
// returned counter, so tests can assert teardown fires exactly once.
func newCounted(a, b int) (*Shared[pair], *int) {
	torn := new(int)
	s := NewShared(&pair{a: a, b: b}, WithFinalizer(func(*pair) { *torn++ }))
	return s, torn
}

// strongCount reads the block's strong count. Test-only.
func strongCount[T any](s *Shared[T]) uint64 {
	if s == nil || s.ctl == nil {
		return 0
	}
	s.ctl.mu.Lock()
	defer s.ctl.mu.Unlock()
	return s.ctl.strong
}

// weakCount reads the block's weak count through a weak handle. Test-only.
func weakCount[T any](w *Weak[T]) uint64 {
	if w == nil || w.ctl == nil {
		return 0
	}
	w.ctl.mu.Lock()
	defer w.ctl.mu.Unlock()
	return w.ctl.weak
}

// blockWeak reads the weak count of the block behind a shared handle.
// Test-only.
func blockWeak[T any](s *Shared[T]) uint64 {
	if s == nil || s.ctl == nil {
		return 0
	}
	s.ctl.mu.Lock()
	defer s.ctl.mu.Unlock()
	return s.ctl.weak
}

// observeRetire installs a retirement counter on the handle's block.
// Test-only; must run before any concurrent use of the block.
func observeRetire[T any](s *Shared[T]) *int {
	n := new(int)
	s.ctl.retired = func() { *n++ }
	return n
}
