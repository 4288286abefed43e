package ptr

// Owned is an exclusive-ownership handle: exactly one Owned handle owns a
// payload at a time, with no reference counting. Ownership moves by explicit
// transfer (Adopt, Detach, Share); there is no copy operation. The zero
// value is an empty handle.
type Owned[T any] struct {
	v   *T
	fin func(*T)
}

// Own takes exclusive ownership of a raw value. A nil value yields an empty
// handle. WithFinalizer attaches the payload teardown invoked by Delete or
// Reset.
func Own[T any](v *T, opts ...Option[T]) *Owned[T] {
	if v == nil {
		return &Owned[T]{}
	}
	s := applyOptions(opts)
	return &Owned[T]{v: v, fin: s.fin}
}

// Get returns the payload, or nil when the handle is empty.
func (o *Owned[T]) Get() *T {
	if o == nil {
		return nil
	}
	return o.v
}

// IsEmpty reports whether the handle holds no payload.
func (o *Owned[T]) IsEmpty() bool {
	return o == nil || o.v == nil
}

// Delete tears down the payload and empties the handle. Deleting an empty
// handle is a no-op.
func (o *Owned[T]) Delete() {
	if o == nil || o.v == nil {
		return
	}
	if o.fin != nil {
		o.fin(o.v)
	}
	o.v = nil
	o.fin = nil
}

// Detach returns the raw payload and empties the handle without teardown.
// The caller assumes ownership of the returned value.
func (o *Owned[T]) Detach() *T {
	if o == nil {
		return nil
	}
	v := o.v
	o.v = nil
	o.fin = nil
	return v
}

// Reset tears down the current payload, if any, and takes ownership of v.
// The handle's finalizer is kept and will apply to the new payload.
func (o *Owned[T]) Reset(v *T) {
	if o.v != nil && o.fin != nil {
		o.fin(o.v)
	}
	o.v = v
}

// Adopt transfers other's payload and finalizer into o, tearing down o's
// current payload first. other is left empty. Self-adoption is a no-op.
func (o *Owned[T]) Adopt(other *Owned[T]) {
	if o == other {
		return
	}
	if o.v != nil && o.fin != nil {
		o.fin(o.v)
	}
	if other != nil {
		o.v = other.v
		o.fin = other.fin
		other.v = nil
		other.fin = nil
	} else {
		o.v = nil
		o.fin = nil
	}
}

// Alias returns a non-owning observer of the payload with no lifecycle
// participation.
func (o *Owned[T]) Alias() *Alias[T] {
	return &Alias[T]{v: o.Get()}
}

// Equal reports whether both handles hold the same payload address.
func (o *Owned[T]) Equal(other *Owned[T]) bool {
	return o.Get() == other.Get()
}

// Compare orders handles by payload address and reports -1, 0, or 1.
func (o *Owned[T]) Compare(other *Owned[T]) int {
	return comparePointers(o.Get(), other.Get())
}
