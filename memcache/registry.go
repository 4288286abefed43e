package memcache

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Registry aggregates accounting across a set of pools: total live
// allocations, per-pool stats, and (in debug mode) the borrow sites of
// everything acquired but never released. Pools attach at construction via
// WithRegistry. The zero value is ready to use.
type Registry struct {
	mu    sync.Mutex
	debug atomic.Bool
	pools []registrant
}

type registrant struct {
	name  string
	stats func() Stats
	leaks func() map[string]int
}

// DefaultRegistry is a process-wide registry for callers that do not need
// their own aggregation point.
var DefaultRegistry = &Registry{}

func (r *Registry) attach(name string, stats func() Stats, leaks func() map[string]int) {
	r.mu.Lock()
	r.pools = append(r.pools, registrant{name: name, stats: stats, leaks: leaks})
	r.mu.Unlock()
}

// SetDebug toggles borrow-site tracking for every pool attached to this
// registry. While enabled, each Acquire records the caller's stack and each
// Release retires it, at the cost of a stack walk per acquire. Blocks
// acquired before debug mode was enabled are not tracked.
func (r *Registry) SetDebug(on bool) {
	r.debug.Store(on)
}

func (r *Registry) debugging() bool {
	return r.debug.Load()
}

// InUse returns the total number of live allocations across all attached
// pools. Useful in tests as a single leak counter.
func (r *Registry) InUse() int {
	r.mu.Lock()
	pools := r.pools
	r.mu.Unlock()

	total := 0
	for _, p := range pools {
		total += p.stats().InUse
	}
	return total
}

// Dump writes per-pool accounting to w and, in debug mode, the borrow sites
// of all outstanding allocations. Pools are reported in attachment order;
// leak sites are sorted for stable output.
func (r *Registry) Dump(w io.Writer) {
	r.mu.Lock()
	pools := r.pools
	r.mu.Unlock()

	for _, p := range pools {
		s := p.stats()
		fmt.Fprintf(w, "%s: in-use=%d idle=%d rate=%d%%\n", p.name, s.InUse, s.Idle, s.Rate)
	}
	if !r.debugging() {
		return
	}
	for _, p := range pools {
		leaks := p.leaks()
		if len(leaks) == 0 {
			continue
		}
		sites := make([]string, 0, len(leaks))
		for site := range leaks {
			sites = append(sites, site)
		}
		sort.Strings(sites)
		for _, site := range sites {
			fmt.Fprintf(w, "%s: %d not released, borrowed at:\n", p.name, leaks[site])
			fmt.Fprintf(w, "\t%s\n", strings.ReplaceAll(strings.TrimRight(site, "\n"), "\n", "\n\t"))
		}
	}
}
