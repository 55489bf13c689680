package stringpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Pool Construction and Add Helpers
// ============================================================================

// mustAdd adds s to the pool and fails the test on error.
func mustAdd[T Unit](t testing.TB, p *Pool[T], s []T) []T {
	t.Helper()

	view, err := p.Add(s)
	require.NoError(t, err, "Add should not fail with a working source")
	return view
}

// mustAddString adds a string to a byte pool and fails the test on error.
func mustAddString(t testing.TB, p *Pool[byte], s string) string {
	t.Helper()

	pooled, err := AddString(p, s)
	require.NoError(t, err, "AddString should not fail with a working source")
	return pooled
}

// bytesOfLen returns a deterministic string of n distinct-looking bytes.
func bytesOfLen(n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('a' + i%26)
	}
	return s
}

// ============================================================================
// Invariant Checking
// ============================================================================

// assertSortedByFreeSpace verifies the pool's block ordering invariant:
// ascending free space, which the binary searches in Add depend on.
func assertSortedByFreeSpace[T Unit](t testing.TB, p *Pool[T]) {
	t.Helper()

	for i := 1; i < len(p.blocks); i++ {
		prev := p.blocks[i-1].FreeSpace()
		cur := p.blocks[i].FreeSpace()
		if cur < prev {
			t.Fatalf("blocks out of order: block %d has %d free, block %d has %d free",
				i-1, prev, i, cur)
		}
	}
}

// assertViewsMatch verifies that each view still holds the content captured
// when it was created.
func assertViewsMatch[T Unit](t testing.TB, views [][]T, want [][]T) {
	t.Helper()

	require.Equal(t, len(want), len(views), "view count mismatch")
	for i := range views {
		require.Equal(t, want[i], views[i], "view %d no longer matches its original content", i)
	}
}

// ============================================================================
// Test Sources
// ============================================================================

// failingSource fails every allocation with a fixed error.
type failingSource[T Unit] struct {
	err error
}

func (f failingSource[T]) Alloc(int) ([]T, error) { return nil, f.err }

func (failingSource[T]) Free([]T) error { return nil }

// countingSource wraps HeapSource and records alloc and free calls, so
// tests can verify that Close returns every buffer to the source that
// created it.
type countingSource[T Unit] struct {
	allocs int
	frees  int
}

func (c *countingSource[T]) Alloc(n int) ([]T, error) {
	c.allocs++
	return HeapSource[T]{}.Alloc(n)
}

func (c *countingSource[T]) Free(b []T) error {
	c.frees++
	return nil
}
