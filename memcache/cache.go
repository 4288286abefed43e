package memcache

import (
	"sync"

	"github.com/WorkingBitsSystems/SmartPointers/internal/stacktrace"
)

// Stats is a point-in-time snapshot of a pool's accounting.
type Stats struct {
	InUse int // blocks acquired and not yet released
	Idle  int // recycled blocks held for reuse
	Rate  int // configured ceiling percentage
}

// Cache is a bounded recycling pool of fixed-size raw byte blocks for one
// consumer type. Acquire returns the most recently released block when one
// is available (stack discipline), so hot paths reuse warm memory; Release
// trims the pool back under its ceiling, which is a percentage of the
// current in-use count rather than a fixed cap, so retained memory tracks
// the live working set instead of the historical peak.
//
// Invariant, re-established after every release:
//
//	idle <= floor(inUse * rate / 100)
//
// One mutex guards the whole pool. This is a deliberate contention
// trade-off: per-type pools are already partitioned by consumer type, and a
// coarse lock keeps the accounting trivially correct.
type Cache struct {
	blockSize int

	mu    sync.Mutex
	rate  int
	inUse int
	idle  [][]byte // stack; top = most recently released

	reg *Registry

	// borrowed maps live blocks to the borrow-site stack that acquired
	// them. Populated only while the attached registry is in debug mode.
	// untracked counts live blocks acquired while debug mode was off, so
	// their releases are not mistaken for foreign blocks. Invariant:
	// inUse == len(borrowed) + untracked.
	borrowed  map[*byte]string
	untracked int
}

// New creates a cache recycling blocks of exactly blockSize bytes.
// blockSize must be positive.
func New(blockSize int, opts ...Option) *Cache {
	if blockSize <= 0 {
		panic("memcache: block size must be positive")
	}
	s := applyOptions(opts)
	c := &Cache{
		blockSize: blockSize,
		rate:      s.rate,
		reg:       s.reg,
	}
	if s.reg != nil {
		s.reg.attach(s.name, c.Stats, c.leaks)
	}
	return c
}

// BlockSize returns the fixed block size this cache recycles.
func (c *Cache) BlockSize() int {
	return c.blockSize
}

// Acquire returns a block of BlockSize bytes. A recycled block retains
// whatever the previous user wrote into it: the caller must treat the
// contents as uninitialized and perform its own initialization. Only when no
// recycled block is available is a fresh one allocated.
func (c *Cache) Acquire() []byte {
	c.mu.Lock()
	var b []byte
	if n := len(c.idle); n > 0 {
		b = c.idle[n-1]
		c.idle[n-1] = nil
		c.idle = c.idle[:n-1]
	} else {
		b = make([]byte, c.blockSize)
	}
	c.inUse++
	if c.debugging() {
		if c.borrowed == nil {
			c.borrowed = make(map[*byte]string)
		}
		c.borrowed[&b[0]] = stacktrace.Capture(1)
	} else {
		c.untracked++
	}
	c.mu.Unlock()
	return b
}

// Release returns a block to the pool and trims the pool back under its
// ceiling. Blocks whose length or capacity differs from BlockSize are
// rejected with ErrBlockSize — variable-length allocations and windows into
// larger buffers must bypass the cache. A release with no outstanding
// acquire is rejected with ErrForeignBlock.
func (c *Cache) Release(b []byte) error {
	if b == nil {
		return ErrNilBlock
	}
	if len(b) != c.blockSize || cap(b) != c.blockSize {
		return ErrBlockSize
	}

	c.mu.Lock()
	if c.inUse == 0 {
		c.mu.Unlock()
		return ErrForeignBlock
	}
	if _, ok := c.borrowed[&b[0]]; ok {
		delete(c.borrowed, &b[0])
	} else if c.untracked > 0 {
		c.untracked--
	} else {
		c.mu.Unlock()
		return ErrForeignBlock
	}
	c.idle = append(c.idle, b)
	c.inUse--
	c.trim()
	c.mu.Unlock()
	return nil
}

// trim pops and drops the most recently pushed blocks until the ceiling
// invariant holds again. Caller holds c.mu.
func (c *Cache) trim() {
	target := c.inUse * c.rate / 100
	for len(c.idle) > target {
		n := len(c.idle) - 1
		c.idle[n] = nil
		c.idle = c.idle[:n]
	}
}

// Stats returns a snapshot of the cache's accounting.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	s := Stats{InUse: c.inUse, Idle: len(c.idle), Rate: c.rate}
	c.mu.Unlock()
	return s
}

func (c *Cache) debugging() bool {
	return c.reg != nil && c.reg.debugging()
}

// leaks reports outstanding borrow sites, grouped by stack. Empty unless the
// attached registry has debug mode enabled.
func (c *Cache) leaks() map[string]int {
	c.mu.Lock()
	out := make(map[string]int, len(c.borrowed))
	for _, site := range c.borrowed {
		out[site]++
	}
	c.mu.Unlock()
	return out
}
