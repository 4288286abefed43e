// Package ptr provides in-process ownership handles for dynamically
// allocated values: exclusive ownership (Owned), shared ownership with
// reference counting (Shared), non-owning observation with presence checking
// (Weak), and bare non-owning aliasing (Alias).
//
// # Overview
//
// A raw value is wrapped into a control block the first time a Shared handle
// is constructed from it (or when ownership transfers in from an Owned
// handle via Share). The block carries two independent counts:
//
//   - strong: owning references. The payload is torn down exactly once, at
//     the moment the strong count drops from 1 to 0.
//   - weak: observing references. They never keep the payload alive; the
//     block itself is retired when the last of the two counts reaches zero,
//     in either order.
//
// Weak handles convert back into owning handles only through Promote, which
// checks liveness and increments the strong count in a single critical
// section, so a successful promotion can never observe a torn-down payload.
//
// # Handles
//
//	Handle  Owns payload  Counted  Copy    Transfer  Release
//	Owned   exclusively   no       —       Adopt     Delete / Detach
//	Shared  jointly       strong   Clone   Adopt     Release
//	Weak    never         weak     Clone   Adopt     Drop
//	Alias   never         no       Clone   —         Clear
//
// Handles do not release themselves at end of scope; callers pair every
// Clone/NewShared with a Release (and every Weak with a Drop). Releasing or
// dropping an already-empty handle is a safe no-op.
//
// # Usage Example
//
//	type conn struct{ fd int }
//
//	s1 := ptr.NewShared(&conn{fd: 3}, ptr.WithFinalizer(func(c *conn) {
//		closeFD(c.fd)
//	}))
//	s2 := s1.Clone()
//	w := s1.Weak()
//
//	s1.Release()         // payload still alive, s2 owns it
//	if p := w.Promote(); !p.IsEmpty() {
//		use(p.Get())
//		p.Release()
//	}
//	s2.Release()         // finalizer runs here, exactly once
//	w.Drop()             // block retires here
//
// # Thread Safety
//
// Count mutations and the release-or-retire decision are serialized per
// block; operations on different blocks are independent. Individual handle
// variables are not protected: two goroutines must not mutate the same
// Shared (or Weak) variable concurrently — give each goroutine its own
// Clone. Payload contents are never serialized by this package; callers
// needing exclusive access to what a handle points at add their own
// synchronization.
//
// # Error Handling
//
// Get on an empty handle returns nil and the caller owns the nil check,
// mirroring raw-pointer semantics. Count underflow indicates corrupted
// handle bookkeeping and panics. Reference cycles between Shared handles
// are never broken automatically; this package is not a garbage collector.
//
// # Related Packages
//
//   - github.com/WorkingBitsSystems/SmartPointers/memcache: bounded
//     allocation-recycling pools for hot object types.
package ptr
