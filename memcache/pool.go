package memcache

import (
	"sync"

	"github.com/WorkingBitsSystems/SmartPointers/internal/stacktrace"
)

// Pool is the typed rendering of Cache: a bounded recycling pool of *T for
// one consumer type, where the block size is the type's size by
// construction. It applies the same stack discipline and the same
// rate-bounded trim after every release.
//
// A recycled object retains its previous field values. Callers must fully
// reinitialize what they acquire; the pool never zeroes or resets objects.
//
// Releasing the same object twice without an intervening Acquire corrupts
// the pool (the same pointer would be handed out twice). For objects
// acquired with an attached registry in debug mode, the second release is
// detected and rejected.
type Pool[T any] struct {
	mu    sync.Mutex
	rate  int
	inUse int
	idle  []*T // stack; top = most recently released

	reg *Registry

	// borrowed maps live objects to their borrow-site stacks; populated
	// only while the attached registry is in debug mode. untracked counts
	// live objects acquired while debug mode was off, so their releases
	// are not mistaken for foreign objects. Invariant:
	// inUse == len(borrowed) + untracked.
	borrowed  map[*T]string
	untracked int
}

// NewPool creates a recycling pool for objects of type T.
func NewPool[T any](opts ...Option) *Pool[T] {
	s := applyOptions(opts)
	p := &Pool[T]{
		rate: s.rate,
		reg:  s.reg,
	}
	if s.reg != nil {
		s.reg.attach(s.name, p.Stats, p.leaks)
	}
	return p
}

// Acquire returns a *T, recycled when possible. Recycled objects keep their
// previous contents; the caller must reinitialize every field it relies on.
func (p *Pool[T]) Acquire() *T {
	p.mu.Lock()
	var v *T
	if n := len(p.idle); n > 0 {
		v = p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
	} else {
		v = new(T)
	}
	p.inUse++
	if p.debugging() {
		if p.borrowed == nil {
			p.borrowed = make(map[*T]string)
		}
		p.borrowed[v] = stacktrace.Capture(1)
	} else {
		p.untracked++
	}
	p.mu.Unlock()
	return v
}

// Release returns an object to the pool and trims the pool back under its
// ceiling. A release with no outstanding acquire is rejected with
// ErrForeignBlock.
func (p *Pool[T]) Release(v *T) error {
	if v == nil {
		return ErrNilBlock
	}

	p.mu.Lock()
	if p.inUse == 0 {
		p.mu.Unlock()
		return ErrForeignBlock
	}
	if _, ok := p.borrowed[v]; ok {
		delete(p.borrowed, v)
	} else if p.untracked > 0 {
		p.untracked--
	} else {
		p.mu.Unlock()
		return ErrForeignBlock
	}
	p.idle = append(p.idle, v)
	p.inUse--
	p.trim()
	p.mu.Unlock()
	return nil
}

// trim pops and drops the most recently pushed objects until the ceiling
// invariant holds again. Caller holds p.mu.
func (p *Pool[T]) trim() {
	target := p.inUse * p.rate / 100
	for len(p.idle) > target {
		n := len(p.idle) - 1
		p.idle[n] = nil
		p.idle = p.idle[:n]
	}
}

// Stats returns a snapshot of the pool's accounting.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	s := Stats{InUse: p.inUse, Idle: len(p.idle), Rate: p.rate}
	p.mu.Unlock()
	return s
}

func (p *Pool[T]) debugging() bool {
	return p.reg != nil && p.reg.debugging()
}

func (p *Pool[T]) leaks() map[string]int {
	p.mu.Lock()
	out := make(map[string]int, len(p.borrowed))
	for _, site := range p.borrowed {
		out[site]++
	}
	p.mu.Unlock()
	return out
}
