// Package memcache provides per-type bounded allocation-recycling pools for
// hot object types: types that are created and destroyed in bursts pay the
// allocator once per working-set slot instead of once per use.
//
// # Overview
//
// Each pool serves one consumer type and recycles blocks of one fixed size.
// Releases push onto a stack and acquires pop from it, so the most recently
// used memory is reused first. After every release the pool trims itself
// back under a ceiling proportional to the number of allocations currently
// in use:
//
//	idle <= floor(inUse * rate / 100)
//
// With the default rate of 50, a type with 100 live allocations keeps at
// most 50 recycled blocks; as usage drops the pool shrinks with it,
// converging toward the current working set rather than the historical
// peak. This is the whole policy — there is no coalescing, no fragmentation
// management, and no cross-type sharing.
//
// # Pool Kinds
//
// Cache recycles raw fixed-size byte blocks; Release rejects blocks of any
// other size (ErrBlockSize), so variable-length allocations must bypass the
// cache and use plain allocation. Pool[T] is the typed rendering for
// application object types, where the block size is the type's size by
// construction.
//
// Recycled memory is returned as-is: no zeroing, no reconstruction. Callers
// must treat acquired blocks and objects as uninitialized.
//
// # Usage Example
//
//	var frames = memcache.NewPool[Frame](
//		memcache.WithRate(50),
//		memcache.WithRegistry(memcache.DefaultRegistry, "frames"),
//	)
//
//	f := frames.Acquire()
//	*f = Frame{seq: next()} // full reinit; recycled objects keep stale fields
//	...
//	if err := frames.Release(f); err != nil {
//		return err
//	}
//
// # Diagnostics
//
// Pools can attach to a Registry, which sums live allocations across pools
// (a one-line leak check for tests) and dumps per-pool stats. With
// Registry.SetDebug(true), every acquire records its borrow-site stack and
// Dump reports exactly where unreleased allocations were borrowed. Debug
// mode costs a stack walk per acquire; leave it off outside investigations.
//
// # Thread Safety
//
// One mutex guards each pool's stack and counters. The lock is deliberately
// coarse — pools are already partitioned per type, and sharding the stack
// would complicate the ceiling accounting for little gain. Operations on
// different pools are fully independent.
//
// # Related Packages
//
//   - github.com/WorkingBitsSystems/SmartPointers/ptr: ownership handles for
//     the values a pool's consumers allocate.
package memcache
