package stringpool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeapSource_AllocatesZeroedBuffers verifies length, zeroing, and the
// no-op Free.
func TestHeapSource_AllocatesZeroedBuffers(t *testing.T) {
	src := HeapSource[uint16]{}

	buf, err := src.Alloc(256)
	require.NoError(t, err)
	require.Len(t, buf, 256)
	for i, u := range buf {
		require.Zero(t, u, "unit %d must start zeroed", i)
	}

	require.NoError(t, src.Free(buf))
}

// TestHeapSource_RejectsUnaddressableSizes verifies the overflow guard for
// unit counts whose byte size exceeds the platform int.
func TestHeapSource_RejectsUnaddressableSizes(t *testing.T) {
	_, err := HeapSource[uint16]{}.Alloc(math.MaxInt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = HeapSource[rune]{}.Alloc(math.MaxInt/4 + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = HeapSource[byte]{}.Alloc(-1)
	require.Error(t, err, "negative lengths must be rejected, not panic")
}

// TestOffHeapSource_AllocFreeRoundTrip verifies mapped buffers are usable
// and returnable. On platforms without mmap the source degrades to heap
// allocation with the same contract.
func TestOffHeapSource_AllocFreeRoundTrip(t *testing.T) {
	src := OffHeapSource[byte]{}

	buf, err := src.Alloc(4096)
	require.NoError(t, err)
	require.Len(t, buf, 4096)

	for i := range buf {
		require.Zero(t, buf[i], "mapped memory must be zeroed")
	}
	copy(buf, "written through the mapping")
	assert.Equal(t, "written", string(buf[:7]))

	require.NoError(t, src.Free(buf))
}

// TestOffHeapSource_ZeroLength verifies the empty buffer special case:
// no mapping behind it, Free is a no-op.
func TestOffHeapSource_ZeroLength(t *testing.T) {
	src := OffHeapSource[rune]{}

	buf, err := src.Alloc(0)
	require.NoError(t, err)
	assert.Len(t, buf, 0)

	require.NoError(t, src.Free(buf))
	require.NoError(t, src.Free(nil))
}

// TestOffHeapSource_RejectsUnaddressableSizes mirrors the heap source
// guard for the mapped path.
func TestOffHeapSource_RejectsUnaddressableSizes(t *testing.T) {
	_, err := OffHeapSource[rune]{}.Alloc(math.MaxInt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = OffHeapSource[byte]{}.Alloc(-5)
	require.Error(t, err)
}

// TestPool_OffHeapEndToEnd runs a whole pool lifecycle on mapped storage:
// many adds across blocks, merge, verify, close.
func TestPool_OffHeapEndToEnd(t *testing.T) {
	a := New(WithSource[byte](OffHeapSource[byte]{}), WithStandardBlockCapacity[byte](1024))
	b := New(WithSource[byte](OffHeapSource[byte]{}), WithStandardBlockCapacity[byte](1024))

	var views [][]byte
	var want [][]byte
	for i := range 200 {
		s := bytesOfLen(1 + i%100)
		p := a
		if i%2 == 1 {
			p = b
		}
		views = append(views, mustAdd(t, p, s))
		want = append(want, append([]byte(nil), s...))
	}

	merged := Merge(a, b)
	assertViewsMatch(t, views, want)
	assertSortedByFreeSpace(t, merged)

	require.NoError(t, merged.Close(), "unmapping every block must succeed")
	assert.Equal(t, 0, merged.BlockCount())
}

// TestPool_OffHeapWideUnits maps uint16 storage and round-trips non-ASCII
// content through it.
func TestPool_OffHeapWideUnits(t *testing.T) {
	p := New(WithSource[uint16](OffHeapSource[uint16]{}), WithTerminator[uint16]())

	in := []uint16{0x48, 0x69, 0x2603, 0xD83D, 0xDE00}
	view := mustAdd(t, p, in)
	assert.Equal(t, in, view)

	require.NoError(t, p.Close())
}
