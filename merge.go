package stringpool

import "errors"

// Merge builds a pool owning every block of the given pools, leaving the
// sources empty but usable. Buffers are neither copied nor moved in memory,
// so views handed out by the source pools remain valid; they are backed by
// the merged pool from then on.
//
// All pools must agree on string termination; mixing terminated and
// unterminated pools is a programming error and panics. The merged pool
// starts with the default standard block capacity and adopts first's
// storage source for future blocks. Each adopted block still returns to
// the source that created it on Close.
func Merge[T Unit](first *Pool[T], rest ...*Pool[T]) *Pool[T] {
	merged := &Pool[T]{
		standard:  DefaultStandardBlockCapacity,
		terminate: first.terminate,
		src:       first.src,
	}
	merged.blocks = first.blocks
	first.blocks = nil

	total := len(merged.blocks)
	for _, p := range rest {
		total += len(p.blocks)
	}
	if cap(merged.blocks) < total {
		grown := make([]Block[T], len(merged.blocks), total)
		copy(grown, merged.blocks)
		merged.blocks = grown
	}

	for _, p := range rest {
		if p.terminate != merged.terminate {
			panic(errors.New("stringpool: cannot merge terminated and unterminated pools"))
		}
		mid := len(merged.blocks)
		merged.blocks = append(merged.blocks, p.blocks...)
		p.blocks = nil
		mergeRuns(merged.blocks, mid)
	}
	return merged
}

// mergeRuns restores ascending free-space order when the ranges [0, mid)
// and [mid, len) are each already sorted. Blocks from the left run come
// first on equal free space.
func mergeRuns[T Unit](blocks []Block[T], mid int) {
	if mid == 0 || mid == len(blocks) {
		return
	}
	if blocks[mid].FreeSpace() >= blocks[mid-1].FreeSpace() {
		return
	}
	out := make([]Block[T], 0, len(blocks))
	i, j := 0, mid
	for i < mid && j < len(blocks) {
		if blocks[j].FreeSpace() < blocks[i].FreeSpace() {
			out = append(out, blocks[j])
			j++
		} else {
			out = append(out, blocks[i])
			i++
		}
	}
	out = append(out, blocks[i:mid]...)
	out = append(out, blocks[j:]...)
	copy(blocks, out)
}
