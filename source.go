package stringpool

import (
	"fmt"

	"github.com/danielkrupinski/stringpool/internal/buf"
)

// Source provides and reclaims the buffers backing pool blocks.
//
// Implementations:
//   - HeapSource: Buffers on the Go heap, reclaimed by the garbage collector
//   - OffHeapSource: Buffers in anonymous memory mappings outside the heap
//
// A Source must hand out zeroed buffers of exactly the requested length.
type Source[T Unit] interface {
	// Alloc returns a zeroed buffer of n units.
	Alloc(n int) ([]T, error)

	// Free releases a buffer previously returned by Alloc. Buffers may be
	// freed in any order, each at most once.
	Free(b []T) error
}

// HeapSource allocates block buffers on the Go heap. Freeing is a no-op;
// the garbage collector reclaims a buffer once no views into it remain.
type HeapSource[T Unit] struct{}

var _ Source[byte] = HeapSource[byte]{}

// Alloc returns a zeroed heap buffer of n units.
func (HeapSource[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("stringpool: negative buffer length %d", n)
	}
	if _, ok := buf.MulOverflowSafe(n, unitSize[T]()); !ok {
		return nil, fmt.Errorf("%w: %d units of %d bytes", ErrTooLarge, n, unitSize[T]())
	}
	return make([]T, n), nil
}

// Free is a no-op for heap buffers.
func (HeapSource[T]) Free([]T) error { return nil }
