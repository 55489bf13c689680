//go:build unix

package stringpool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/danielkrupinski/stringpool/internal/buf"
)

// OffHeapSource allocates block buffers in anonymous private mappings,
// keeping bulk string storage out of the garbage collector's heap. Buffers
// must be returned with Free; dropping a pool without Close leaks the
// mappings for the life of the process.
type OffHeapSource[T Unit] struct{}

var _ Source[byte] = OffHeapSource[byte]{}

// Alloc maps a zeroed region of n units.
func (OffHeapSource[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("stringpool: negative buffer length %d", n)
	}
	if n == 0 {
		// mmap rejects zero-length mappings.
		return []T{}, nil
	}
	size, ok := buf.MulOverflowSafe(n, unitSize[T]())
	if !ok {
		return nil, fmt.Errorf("%w: %d units of %d bytes", ErrTooLarge, n, unitSize[T]())
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("stringpool: mmap %d bytes: %w", size, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n), nil
}

// Free unmaps a buffer returned by Alloc. Zero-length buffers carry no
// mapping and freeing them is a no-op.
func (OffHeapSource[T]) Free(b []T) error {
	if len(b) == 0 {
		return nil
	}
	size := len(b) * unitSize[T]()
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b))), size)
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("stringpool: munmap %d bytes: %w", size, err)
	}
	return nil
}
