package memcache

// DefaultRate is the default pool ceiling percentage: the pool retains at
// most 50% of the currently in-use allocation count.
const DefaultRate = 50

// Option configures a Cache or Pool at construction time. The rate and
// registry attachment are fixed for the lifetime of the pool.
type Option func(*settings)

type settings struct {
	rate int
	reg  *Registry
	name string
}

func applyOptions(opts []Option) settings {
	s := settings{rate: DefaultRate}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// WithRate sets the pool ceiling percentage. After every release the pool is
// trimmed until idle <= floor(inUse*pct/100). A rate of 0 disables retention
// entirely. Negative rates panic.
func WithRate(pct int) Option {
	if pct < 0 {
		panic("memcache: negative cache rate")
	}
	return func(s *settings) { s.rate = pct }
}

// WithRegistry attaches the pool to a registry under the given name, making
// it visible to the registry's aggregate in-use accounting and leak dumps.
func WithRegistry(r *Registry, name string) Option {
	return func(s *settings) {
		s.reg = r
		s.name = name
	}
}
