package stringpool

import "fmt"

// Block owns one contiguous buffer of code units and hands out views into
// it. Strings are packed back to back with no per-string header; a block
// never reclaims space until the owning pool releases the whole buffer.
//
// Blocks are value types: assigning or swapping Block values moves the
// buffer reference together with its bookkeeping, so views into the buffer
// stay valid across moves.
type Block[T Unit] struct {
	units     []T
	used      int
	terminate bool
	src       Source[T]
}

// NewBlock allocates a block of the given capacity from src. When terminate
// is set the block follows every stored string with a zero unit.
func NewBlock[T Unit](capacity int, terminate bool, src Source[T]) (Block[T], error) {
	units, err := src.Alloc(capacity)
	if err != nil {
		return Block[T]{}, err
	}
	return Block[T]{units: units, terminate: terminate, src: src}, nil
}

// CanTake reports whether a string of length n fits in the remaining space,
// counting the terminator slot when the block terminates strings.
func (b *Block[T]) CanTake(n int) bool {
	space, ok := spaceFor(n, b.terminate)
	return ok && space <= b.FreeSpace()
}

// Append copies s into the block and returns a view of the stored copy. The
// view aliases block storage; its capacity equals its length, so appending
// to the view copies out of the pool instead of overwriting neighbours.
//
// Callers must check CanTake first. Appending past the remaining space is a
// programming error and panics.
func (b *Block[T]) Append(s []T) []T {
	space, ok := spaceFor(len(s), b.terminate)
	if !ok || space > b.FreeSpace() {
		panic(fmt.Errorf("stringpool: append of %d units into block with %d units free", len(s), b.FreeSpace()))
	}
	start := b.used
	end := start + len(s)
	copy(b.units[start:end], s)
	if b.terminate {
		b.units[end] = 0
	}
	b.used += space
	return b.units[start:end:end]
}

// FreeSpace returns the number of unoccupied units.
func (b *Block[T]) FreeSpace() int {
	return len(b.units) - b.used
}

// Capacity returns the total number of units the block can hold.
func (b *Block[T]) Capacity() int {
	return len(b.units)
}

// Used returns the number of occupied units, terminators included.
func (b *Block[T]) Used() int {
	return b.used
}

// Terminates reports whether the block writes a zero unit after each string.
func (b *Block[T]) Terminates() bool {
	return b.terminate
}

// release returns the buffer to its source. The block is unusable afterwards.
func (b *Block[T]) release() error {
	units := b.units
	b.units = nil
	b.used = 0
	if b.src == nil {
		return nil
	}
	return b.src.Free(units)
}
