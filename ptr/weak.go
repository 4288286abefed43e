package ptr

// Weak is an observing handle on a shared payload. It contributes to the
// block's weak count only and never keeps the payload alive; instead it can
// attempt to promote itself back into an owning Shared handle. The zero
// value is an empty handle.
type Weak[T any] struct {
	ctl *control[T]
}

// Clone returns a new weak handle observing the same block.
func (w *Weak[T]) Clone() *Weak[T] {
	if w == nil || w.ctl == nil {
		return &Weak[T]{}
	}
	w.ctl.addWeak()
	return &Weak[T]{ctl: w.ctl}
}

// Set makes w observe the same block as other, dropping whatever w observed
// before. Self-assignment and assignment on the same block are no-ops.
func (w *Weak[T]) Set(other *Weak[T]) {
	if w == other {
		return
	}
	var next *control[T]
	if other != nil {
		next = other.ctl
	}
	if next == w.ctl {
		return
	}
	if w.ctl != nil {
		w.ctl.decWeak()
	}
	w.ctl = next
	if w.ctl != nil {
		w.ctl.addWeak()
	}
}

// Adopt transfers other's weak reference into w, dropping whatever w
// observed before. other is left empty; no net count change occurs for the
// transferred block. Self-adoption is a no-op.
func (w *Weak[T]) Adopt(other *Weak[T]) {
	if w == other {
		return
	}
	if w.ctl != nil {
		w.ctl.decWeak()
	}
	if other != nil {
		w.ctl = other.ctl
		other.ctl = nil
	} else {
		w.ctl = nil
	}
}

// Observe re-points w at the block behind a shared handle, dropping whatever
// w observed before. An empty shared handle empties w.
func (w *Weak[T]) Observe(s *Shared[T]) {
	var next *control[T]
	if s != nil {
		next = s.ctl
	}
	if next == w.ctl {
		return
	}
	if w.ctl != nil {
		w.ctl.decWeak()
	}
	w.ctl = next
	if w.ctl != nil {
		w.ctl.addWeak()
	}
}

// Promote attempts to convert this observation into an owning reference.
// It returns a non-empty Shared handle only while the payload's strong count
// is still positive; otherwise it returns an empty handle. The check and the
// increment happen in one critical section, so a successful promotion can
// never hand out a torn-down payload.
//
// Promote is the only safe way to access the payload through a weak handle.
func (w *Weak[T]) Promote() *Shared[T] {
	if w == nil || w.ctl == nil {
		return &Shared[T]{}
	}
	if !w.ctl.tryPromote() {
		return &Shared[T]{}
	}
	return &Shared[T]{ctl: w.ctl}
}

// Drop releases the weak reference and empties the handle. Dropping an
// already-empty handle is a no-op.
func (w *Weak[T]) Drop() {
	if w == nil || w.ctl == nil {
		return
	}
	w.ctl.decWeak()
	w.ctl = nil
}

// IsEmpty reports true when the handle observes no block, or when the
// observed payload has already been released.
//
// This is a point-in-time observation: under concurrent release it can be
// stale by the time it returns. Callers needing a usable reference must use
// Promote and check its result, never IsEmpty followed by a separate access.
func (w *Weak[T]) IsEmpty() bool {
	return w == nil || w.ctl == nil || !w.ctl.alive()
}
