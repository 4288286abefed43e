package ptr

import "unsafe"

// Shared is an owning handle to a payload of type T. All copies derived from
// one wrapped value share a single control block; the payload lives at least
// as long as any one of them. The zero value is an empty handle.
//
// Handles are not safe for concurrent mutation of the same handle variable;
// the counts behind them are. Clone a handle before handing it to another
// goroutine.
type Shared[T any] struct {
	ctl *control[T]
}

// NewShared wraps a raw value in a fresh control block (strong=1, weak=0).
// A nil value yields an empty handle. WithFinalizer attaches the payload
// teardown invoked when the last owning reference is released.
func NewShared[T any](v *T, opts ...Option[T]) *Shared[T] {
	if v == nil {
		return &Shared[T]{}
	}
	s := applyOptions(opts)
	return &Shared[T]{ctl: newControl(v, s.fin)}
}

// Share transfers ownership out of an exclusive handle into a new shared
// family. The source is emptied; its finalizer travels with the payload.
// This is the only conversion from Owned to Shared — a non-transferring
// form would create ambiguous dual ownership and is deliberately absent.
func Share[T any](o *Owned[T]) *Shared[T] {
	if o == nil || o.v == nil {
		return &Shared[T]{}
	}
	sh := &Shared[T]{ctl: newControl(o.v, o.fin)}
	o.v = nil
	o.fin = nil
	return sh
}

// Clone returns a new handle sharing the same control block, contributing one
// additional owning reference. Cloning an empty handle yields an empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s == nil || s.ctl == nil {
		return &Shared[T]{}
	}
	s.ctl.addStrong()
	return &Shared[T]{ctl: s.ctl}
}

// Set makes s reference the same payload as other, releasing whatever s
// referenced before. Self-assignment and assignment to a handle on the same
// block are no-ops with no count churn.
func (s *Shared[T]) Set(other *Shared[T]) {
	if s == other {
		return
	}
	var next *control[T]
	if other != nil {
		next = other.ctl
	}
	if next == s.ctl {
		return
	}
	if s.ctl != nil {
		s.ctl.decStrong()
	}
	s.ctl = next
	if s.ctl != nil {
		s.ctl.addStrong()
	}
}

// Adopt transfers other's reference into s, releasing whatever s referenced
// before. other is left empty; no net count change occurs for the transferred
// block. Self-adoption is a no-op.
func (s *Shared[T]) Adopt(other *Shared[T]) {
	if s == other {
		return
	}
	if s.ctl != nil {
		s.ctl.decStrong()
	}
	if other != nil {
		s.ctl = other.ctl
		other.ctl = nil
	} else {
		s.ctl = nil
	}
}

// Get returns the payload, or nil when the handle is empty. The caller is
// responsible for the nil check; this mirrors raw-pointer semantics.
func (s *Shared[T]) Get() *T {
	if s == nil || s.ctl == nil {
		return nil
	}
	return s.ctl.get()
}

// Release drops this handle's owning reference and empties the handle. The
// payload is torn down if this was the last owning reference. Releasing an
// already-empty handle is a no-op.
func (s *Shared[T]) Release() {
	if s == nil || s.ctl == nil {
		return
	}
	s.ctl.decStrong()
	s.ctl = nil
}

// IsEmpty reports whether the handle holds no reference.
func (s *Shared[T]) IsEmpty() bool {
	return s == nil || s.ctl == nil
}

// Weak returns an observing handle on the same block. The weak handle never
// keeps the payload alive.
func (s *Shared[T]) Weak() *Weak[T] {
	if s == nil || s.ctl == nil {
		return &Weak[T]{}
	}
	s.ctl.addWeak()
	return &Weak[T]{ctl: s.ctl}
}

// Alias returns a non-owning observer of the payload with no lifecycle
// participation. The alias does not track releases; see Alias.
func (s *Shared[T]) Alias() *Alias[T] {
	return &Alias[T]{v: s.Get()}
}

// Equal reports whether both handles reference the same payload address.
// Two empty handles compare equal. This is identity, not value equality.
func (s *Shared[T]) Equal(other *Shared[T]) bool {
	return s.Get() == other.Get()
}

// Compare orders handles by payload address and reports -1, 0, or 1. Empty
// handles order before all non-empty handles. Intended for ordering handles
// in containers, not for comparing payload values.
func (s *Shared[T]) Compare(other *Shared[T]) int {
	return comparePointers(s.Get(), other.Get())
}

// comparePointers orders two pointers by address.
func comparePointers[T any](a, b *T) int {
	pa := uintptr(unsafe.Pointer(a))
	pb := uintptr(unsafe.Pointer(b))
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}
