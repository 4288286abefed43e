package ptr

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShared_ZeroValueIsEmpty(t *testing.T) {
	var s Shared[pair]
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Get())

	// Releasing an empty handle is a defined no-op, not an error.
	s.Release()
	s.Release()
	assert.True(t, s.IsEmpty())
}

func TestShared_WrapRawValue(t *testing.T) {
	s, torn := newCounted(1, 3)
	require.False(t, s.IsEmpty())
	require.NotNil(t, s.Get())
	assert.Equal(t, 1, s.Get().a)
	assert.Equal(t, 3, s.Get().b)
	assert.Equal(t, uint64(1), strongCount(s))

	s.Release()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, *torn)
}

func TestShared_NilValueYieldsEmpty(t *testing.T) {
	s := NewShared[pair](nil)
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Get())
}

// Scenario: three handles on one payload; teardown fires exactly once, at
// the release of the last handle.
func TestShared_ThreeHandles_TeardownOnceAtLastRelease(t *testing.T) {
	h1, torn := newCounted(5, 6)
	h2 := h1.Clone()
	h3 := h2.Clone()
	require.Equal(t, uint64(3), strongCount(h1))

	h1.Release()
	assert.Equal(t, 0, *torn, "payload must outlive remaining handles")
	require.NotNil(t, h2.Get())
	assert.Equal(t, 5, h2.Get().a)

	h2.Release()
	assert.Equal(t, 0, *torn)

	h3.Release()
	assert.Equal(t, 1, *torn, "teardown fires exactly once, at the last release")
}

func TestShared_MutationVisibleThroughAllHandles(t *testing.T) {
	s1, _ := newCounted(10, 20)
	s2 := s1.Clone()

	s1.Get().a = 42
	assert.Equal(t, 42, s2.Get().a, "handles share one payload, not copies")

	s1.Release()
	s2.Release()
}

func TestShared_ReleaseOneCopyLeavesOtherValid(t *testing.T) {
	s1, torn := newCounted(7, 9)
	s2 := s1.Clone()
	require.True(t, s1.Equal(s2))

	s1.Release()
	assert.True(t, s1.IsEmpty())
	require.False(t, s2.IsEmpty())
	assert.Equal(t, 7, s2.Get().a)
	assert.Equal(t, 0, *torn)

	s2.Release()
	assert.Equal(t, 1, *torn)
}

func TestShared_SetSelfIsNoOp(t *testing.T) {
	s, _ := newCounted(1, 2)
	s.Set(s)
	assert.Equal(t, uint64(1), strongCount(s), "self-assignment must cause no count churn")
	s.Release()
}

func TestShared_SetSameBlockIsNoOp(t *testing.T) {
	s1, _ := newCounted(1, 2)
	s2 := s1.Clone()

	s1.Set(s2)
	assert.Equal(t, uint64(2), strongCount(s1), "same-block assignment must cause no count churn")

	s1.Release()
	s2.Release()
}

func TestShared_SetReplacesExistingReference(t *testing.T) {
	s1, torn1 := newCounted(1, 2)
	s2, torn2 := newCounted(3, 4)

	s1.Set(s2)
	assert.Equal(t, 1, *torn1, "overwritten reference must release its payload")
	assert.Equal(t, uint64(2), strongCount(s2))
	assert.True(t, s1.Equal(s2))

	s1.Release()
	s2.Release()
	assert.Equal(t, 1, *torn2)
}

func TestShared_SetFromEmptyClears(t *testing.T) {
	s, torn := newCounted(1, 2)
	var empty Shared[pair]

	s.Set(&empty)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, *torn)
}

func TestShared_AdoptTransfers(t *testing.T) {
	src, torn := newCounted(3, 4)
	var dst Shared[pair]

	dst.Adopt(src)
	assert.True(t, src.IsEmpty(), "transfer must empty the source")
	require.False(t, dst.IsEmpty())
	assert.Equal(t, uint64(1), strongCount(&dst), "transfer is count-neutral")
	assert.Equal(t, 3, dst.Get().a)

	dst.Release()
	assert.Equal(t, 1, *torn)
}

func TestShared_AdoptReleasesOldReference(t *testing.T) {
	dst, tornOld := newCounted(1, 2)
	src, tornNew := newCounted(3, 4)

	dst.Adopt(src)
	assert.Equal(t, 1, *tornOld)
	assert.Equal(t, 0, *tornNew)
	assert.True(t, src.IsEmpty())

	dst.Release()
	assert.Equal(t, 1, *tornNew)
}

func TestShared_AdoptSelfIsNoOp(t *testing.T) {
	s, torn := newCounted(1, 2)
	s.Adopt(s)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 0, *torn)
	s.Release()
}

func TestShared_ShareConsumesOwned(t *testing.T) {
	torn := 0
	o := Own(&pair{a: 11, b: 12}, WithFinalizer(func(*pair) { torn++ }))

	s := Share(o)
	assert.True(t, o.IsEmpty(), "transfer must empty the exclusive handle")
	require.False(t, s.IsEmpty())
	assert.Equal(t, 11, s.Get().a)
	assert.Equal(t, 0, torn)

	// The finalizer traveled with the payload.
	s.Release()
	assert.Equal(t, 1, torn)
}

func TestShared_ShareEmptyOwnedYieldsEmpty(t *testing.T) {
	var o Owned[pair]
	s := Share(&o)
	assert.True(t, s.IsEmpty())
}

func TestShared_EqualIsAddressIdentity(t *testing.T) {
	s1, _ := newCounted(1, 2)
	s2 := s1.Clone()
	s3, _ := newCounted(1, 2) // same field values, distinct payload

	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(s3), "equality is payload identity, not value equality")

	var empty1, empty2 Shared[pair]
	assert.True(t, empty1.Equal(&empty2))
	assert.False(t, s1.Equal(&empty1))

	s1.Release()
	s2.Release()
	s3.Release()
}

func TestShared_CompareOrdersByAddress(t *testing.T) {
	s1, _ := newCounted(1, 2)
	s2, _ := newCounted(3, 4)
	clone := s1.Clone()

	assert.Equal(t, 0, s1.Compare(clone))
	assert.Equal(t, -s2.Compare(s1), s1.Compare(s2), "ordering must be antisymmetric")

	var empty Shared[pair]
	assert.Equal(t, -1, empty.Compare(s1), "empty handles order before non-empty")

	// Handles are usable as container keys ordered by Compare.
	handles := []*Shared[pair]{s2, s1, clone}
	sort.Slice(handles, func(i, j int) bool { return handles[i].Compare(handles[j]) < 0 })
	for i := 1; i < len(handles); i++ {
		assert.LessOrEqual(t, handles[i-1].Compare(handles[i]), 0)
	}

	s1.Release()
	s2.Release()
	clone.Release()
}
