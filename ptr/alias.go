package ptr

// Alias is a bare non-owning observer of a payload. It participates in no
// lifecycle accounting: it cannot keep the payload alive and cannot tell
// whether the payload has been released. Use it only where the surrounding
// code guarantees the owner outlives the alias; anything weaker needs a Weak
// handle. The zero value is an empty alias.
type Alias[T any] struct {
	v *T
}

// NewAlias observes a raw value without taking ownership.
func NewAlias[T any](v *T) *Alias[T] {
	return &Alias[T]{v: v}
}

// Get returns the observed payload, or nil when the alias is empty.
func (a *Alias[T]) Get() *T {
	if a == nil {
		return nil
	}
	return a.v
}

// IsEmpty reports whether the alias observes nothing.
func (a *Alias[T]) IsEmpty() bool {
	return a == nil || a.v == nil
}

// Clear drops the observation. The target is untouched.
func (a *Alias[T]) Clear() {
	if a != nil {
		a.v = nil
	}
}

// Clone returns another alias to the same payload.
func (a *Alias[T]) Clone() *Alias[T] {
	return &Alias[T]{v: a.Get()}
}

// Equal reports whether both aliases observe the same payload address.
func (a *Alias[T]) Equal(other *Alias[T]) bool {
	return a.Get() == other.Get()
}

// Compare orders aliases by payload address and reports -1, 0, or 1.
func (a *Alias[T]) Compare(other *Alias[T]) int {
	return comparePointers(a.Get(), other.Get())
}
