package ptr

import "sync"

// control is the per-payload arbitration block shared by every Shared and
// Weak handle derived from one wrapped value. It tracks two independent
// counts: strong (owning) references keep the payload alive, weak (observing)
// references keep only the block itself alive.
//
// Lifecycle contract:
//   - the payload is torn down exactly once, at the strong 1→0 transition
//   - the block retires exactly once, when the second of the two counts
//     reaches zero (in either order)
//
// All count mutations and the release-or-retire decision are serialized on
// mu. The retire step itself runs after mu is released: once both counts are
// provably zero, no live handle can reach the block again.
type control[T any] struct {
	mu     sync.Mutex
	strong uint64
	weak   uint64

	// val is the payload slot. Non-nil only while strong > 0.
	val *T

	// fin is the optional payload teardown, invoked once when strong
	// reaches zero.
	fin func(*T)

	// retired observes block retirement. Settable only within the package;
	// tests use it to verify the reclaim-exactly-once contract.
	retired func()
}

// newControl wraps v with strong=1, weak=0.
func newControl[T any](v *T, fin func(*T)) *control[T] {
	return &control[T]{strong: 1, val: v, fin: fin}
}

func (c *control[T]) addStrong() {
	c.mu.Lock()
	c.strong++
	c.mu.Unlock()
}

// decStrong drops one owning reference. At the 1→0 transition the payload is
// torn down inside the critical section; if no weak references remain the
// block retires after the lock is released.
func (c *control[T]) decStrong() {
	c.mu.Lock()
	if c.strong == 0 {
		c.mu.Unlock()
		panic("ptr: strong count underflow")
	}
	c.strong--
	retire := false
	if c.strong == 0 {
		if c.fin != nil {
			c.fin(c.val)
			c.fin = nil
		}
		c.val = nil
		retire = c.weak == 0
	}
	c.mu.Unlock()
	if retire {
		c.retire()
	}
}

func (c *control[T]) addWeak() {
	c.mu.Lock()
	c.weak++
	c.mu.Unlock()
}

// decWeak drops one observing reference. The payload was already torn down
// when strong hit zero; if strong is also zero the block retires.
func (c *control[T]) decWeak() {
	c.mu.Lock()
	if c.weak == 0 {
		c.mu.Unlock()
		panic("ptr: weak count underflow")
	}
	c.weak--
	retire := c.weak == 0 && c.strong == 0
	c.mu.Unlock()
	if retire {
		c.retire()
	}
}

// tryPromote atomically checks strong > 0 and increments it in the same
// critical section. A separate check followed by a separate increment would
// admit a race where the final owning reference is released in between,
// handing the promoter a torn-down payload.
func (c *control[T]) tryPromote() bool {
	c.mu.Lock()
	ok := c.strong > 0
	if ok {
		c.strong++
	}
	c.mu.Unlock()
	return ok
}

// get returns the payload slot. Callers holding a strong reference always
// observe a non-nil result; weak observers may see nil once the payload has
// been released.
func (c *control[T]) get() *T {
	c.mu.Lock()
	v := c.val
	c.mu.Unlock()
	return v
}

// alive reports whether the payload slot is still occupied. Point-in-time
// observation only.
func (c *control[T]) alive() bool {
	return c.get() != nil
}

func (c *control[T]) retire() {
	if c.retired != nil {
		c.retired()
	}
}
