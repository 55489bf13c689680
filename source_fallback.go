//go:build !unix

package stringpool

// OffHeapSource falls back to heap allocation on platforms without
// anonymous memory mappings.
type OffHeapSource[T Unit] struct{}

var _ Source[byte] = OffHeapSource[byte]{}

// Alloc returns a zeroed heap buffer of n units.
func (OffHeapSource[T]) Alloc(n int) ([]T, error) {
	return HeapSource[T]{}.Alloc(n)
}

// Free is a no-op for heap-backed buffers.
func (OffHeapSource[T]) Free([]T) error { return nil }
