package stringpool

import (
	"errors"
	"sort"
)

// DefaultStandardBlockCapacity is the capacity, in code units, of blocks
// created for pools that were not configured otherwise. Strings needing
// more space get a dedicated block sized exactly for them.
const DefaultStandardBlockCapacity = 8192

// Pool packs immutable strings of code unit type T into a small number of
// large blocks. Views returned by Add alias pool storage and stay valid
// until Close; merging pools moves blocks without touching their buffers,
// so views survive merges too.
//
// The zero value is not usable; construct pools with New.
type Pool[T Unit] struct {
	// blocks stays sorted ascending by free space, so Add can binary
	// search for the fullest block that still fits an incoming string.
	blocks []Block[T]

	standard  int
	terminate bool
	src       Source[T]
}

// New constructs an empty pool. Without options it stores unterminated
// strings in heap blocks of DefaultStandardBlockCapacity units.
func New[T Unit](opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		standard: DefaultStandardBlockCapacity,
		src:      HeapSource[T]{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add copies s into the pool and returns a view of the stored copy.
//
// Add fails only when a new block is needed and the storage source cannot
// provide one; the pool is left unchanged in that case.
func (p *Pool[T]) Add(s []T) ([]T, error) {
	i, err := p.blockFor(len(s))
	if err != nil {
		return nil, err
	}
	view := p.blocks[i].Append(s)
	p.restoreOrder(i)
	return view, nil
}

// blockFor returns the index of a block able to take a string of length n,
// allocating a new block when none of the existing ones fits.
func (p *Pool[T]) blockFor(n int) (int, error) {
	if i, ok := p.findBlock(n); ok {
		return i, nil
	}
	return p.createBlock(n)
}

// findBlock locates the first block able to take a string of length n.
// Blocks are sorted ascending by free space, so CanTake partitions them and
// the first match is the fullest candidate.
func (p *Pool[T]) findBlock(n int) (int, bool) {
	lo := 0
	// The newest block usually has far more free space than the rest. When
	// even the second-to-last block is too full for n, only the last one
	// can possibly fit it and the search skips everything else.
	if len(p.blocks) > 2 && !p.blocks[len(p.blocks)-2].CanTake(n) {
		lo = len(p.blocks) - 1
	}
	i := lo + sort.Search(len(p.blocks)-lo, func(k int) bool {
		return p.blocks[lo+k].CanTake(n)
	})
	if i == len(p.blocks) {
		return 0, false
	}
	return i, true
}

// createBlock appends a block able to hold a string of length n, sized at
// the standard capacity or at exactly the string's space requirement,
// whichever is larger.
func (p *Pool[T]) createBlock(n int) (int, error) {
	space, ok := spaceFor(n, p.terminate)
	if !ok {
		space = n
	}
	capacity := p.standard
	if space > capacity {
		capacity = space
	}
	blk, err := NewBlock(capacity, p.terminate, p.src)
	if err != nil {
		return 0, err
	}
	p.blocks = append(p.blocks, blk)
	return len(p.blocks) - 1, nil
}

// restoreOrder moves the block at index i left to its sorted position after
// an Append reduced its free space. Only wrapper values move; buffers stay
// put, so existing views are unaffected.
func (p *Pool[T]) restoreOrder(i int) {
	free := p.blocks[i].FreeSpace()
	if i == 0 || free >= p.blocks[i-1].FreeSpace() {
		return
	}
	// First position with strictly more free space than blocks[i]; the
	// blocks in [j, i) shift one slot right to make room.
	j := sort.Search(i, func(k int) bool {
		return p.blocks[k].FreeSpace() > free
	})
	if p.blocks[j].FreeSpace() == p.blocks[i-1].FreeSpace() {
		// The whole displaced range has equal free space, so swapping the
		// endpoints keeps it sorted without shifting the middle.
		p.blocks[j], p.blocks[i] = p.blocks[i], p.blocks[j]
		return
	}
	for k := j; k < i; k++ {
		p.blocks[k], p.blocks[i] = p.blocks[i], p.blocks[k]
	}
}

// BlockCount returns the number of blocks currently owned by the pool.
func (p *Pool[T]) BlockCount() int {
	return len(p.blocks)
}

// StandardBlockCapacity returns the capacity used for new blocks.
func (p *Pool[T]) StandardBlockCapacity() int {
	return p.standard
}

// SetStandardBlockCapacity changes the capacity used for blocks created by
// later Adds. Existing blocks are unaffected.
func (p *Pool[T]) SetStandardBlockCapacity(capacity int) {
	if capacity < 0 {
		panic(errors.New("stringpool: negative standard block capacity"))
	}
	p.standard = capacity
}

// Terminates reports whether the pool writes a zero unit after each string.
func (p *Pool[T]) Terminates() bool {
	return p.terminate
}

// Stats summarizes a pool's storage.
type Stats struct {
	Blocks        int // blocks owned by the pool
	CapacityUnits int // total units across all block buffers
	UsedUnits     int // units occupied by strings and terminators
	FreeUnits     int // units still available
}

// Stats sums storage accounting across the pool's blocks.
func (p *Pool[T]) Stats() Stats {
	s := Stats{Blocks: len(p.blocks)}
	for i := range p.blocks {
		s.CapacityUnits += p.blocks[i].Capacity()
		s.UsedUnits += p.blocks[i].Used()
	}
	s.FreeUnits = s.CapacityUnits - s.UsedUnits
	return s
}

// Close releases every block buffer to its source. All views into the pool
// become invalid. Closing an already closed or drained pool is a no-op, and
// a closed pool may be reused; later Adds allocate fresh blocks.
func (p *Pool[T]) Close() error {
	var errs []error
	for i := range p.blocks {
		if err := p.blocks[i].release(); err != nil {
			errs = append(errs, err)
		}
	}
	p.blocks = nil
	return errors.Join(errs...)
}
