package memcache

import "errors"

var (
	// ErrNilBlock indicates a nil block or object was released.
	ErrNilBlock = errors.New("memcache: release of nil block")

	// ErrBlockSize indicates a released block whose size does not match the
	// cache's fixed block size. Variable-length allocations must bypass the
	// cache entirely.
	ErrBlockSize = errors.New("memcache: block size mismatch")

	// ErrForeignBlock indicates a release that cannot correspond to an
	// outstanding acquire from this pool (more releases than acquires, or,
	// in debug mode, a block the pool never handed out).
	ErrForeignBlock = errors.New("memcache: release without matching acquire")
)
