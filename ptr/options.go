package ptr

// Option configures handle construction.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	fin func(*T)
}

// WithFinalizer supplies the payload teardown hook, invoked exactly once when
// the last owning reference to the payload is released. The hook runs inside
// the control block's critical section; it must not call back into the same
// handle family.
func WithFinalizer[T any](fin func(*T)) Option[T] {
	return func(s *settings[T]) { s.fin = fin }
}

func applyOptions[T any](opts []Option[T]) settings[T] {
	var s settings[T]
	for _, o := range opts {
		o(&s)
	}
	return s
}
