// Package intern deduplicates strings on top of pooled storage.
//
// # Overview
//
// An Interner maps every distinct string it sees to a single canonical copy
// held in pool blocks. Repeated Intern calls with equal contents return the
// identical pooled string, so collections full of repeated tokens, keys, or
// paths collapse to one stored copy each.
//
// # Sharding
//
// The interner hashes each string with xxhash and fans out to a power-of-two
// number of shards, each with its own lock, lookup table, and pool.
// Concurrent Intern calls contend only when they land on the same shard.
//
// # Draining
//
// Drain consolidates every shard's blocks into one merged pool and resets
// the interner to empty. Strings interned before the drain stay valid and
// are backed by the returned pool, whose lifetime the caller owns.
package intern

import (
	"errors"
	"math/bits"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/danielkrupinski/stringpool"
)

// DefaultShards is the shard count used when none is configured.
const DefaultShards = 16

// Interner deduplicates strings into pooled storage. It is safe for
// concurrent use.
type Interner struct {
	shards []shard
	mask   uint64

	// poolOpts rebuilds shard pools after a drain.
	poolOpts []stringpool.Option[byte]
}

type shard struct {
	mu      sync.Mutex
	strings map[string]string
	pool    *stringpool.Pool[byte]
}

// Option configures an Interner.
type Option func(*config)

type config struct {
	shards   int
	poolOpts []stringpool.Option[byte]
}

// WithShards sets the shard count, rounded up to a power of two for
// unbiased hash masking.
func WithShards(n int) Option {
	if n < 1 {
		panic(errors.New("intern: shard count must be positive"))
	}
	return func(c *config) { c.shards = n }
}

// WithPoolOptions forwards options to every shard pool, including the pools
// created after a drain.
func WithPoolOptions(opts ...stringpool.Option[byte]) Option {
	return func(c *config) { c.poolOpts = opts }
}

// New constructs an interner. Without options it uses DefaultShards shards
// of unterminated heap-backed pools.
func New(opts ...Option) *Interner {
	cfg := config{shards: DefaultShards}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := ceilPow2(cfg.shards)
	in := &Interner{
		shards:   make([]shard, n),
		mask:     uint64(n - 1),
		poolOpts: cfg.poolOpts,
	}
	for i := range in.shards {
		in.shards[i].strings = make(map[string]string)
		in.shards[i].pool = stringpool.New(in.poolOpts...)
	}
	return in
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Intern returns the pooled copy of s, storing it on first sight. The
// result is canonical: until the interner is drained or closed, every call
// with equal contents returns the identical string.
func (in *Interner) Intern(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	sh := &in.shards[xxhash.Sum64String(s)&in.mask]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if pooled, ok := sh.strings[s]; ok {
		return pooled, nil
	}
	pooled, err := stringpool.AddString(sh.pool, s)
	if err != nil {
		return "", err
	}
	// Key on the pooled copy so the table never retains caller memory.
	sh.strings[pooled] = pooled
	return pooled, nil
}

// Len returns the number of distinct strings currently interned.
func (in *Interner) Len() int {
	n := 0
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		n += len(sh.strings)
		sh.mu.Unlock()
	}
	return n
}

// Stats sums storage accounting across all shard pools.
func (in *Interner) Stats() stringpool.Stats {
	var total stringpool.Stats
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		s := sh.pool.Stats()
		sh.mu.Unlock()
		total.Blocks += s.Blocks
		total.CapacityUnits += s.CapacityUnits
		total.UsedUnits += s.UsedUnits
		total.FreeUnits += s.FreeUnits
	}
	return total
}

// Drain moves every shard's blocks into one merged pool and resets the
// interner to empty. Strings interned before the drain remain valid and are
// backed by the returned pool; the caller owns it and must Close it to
// release off-heap storage.
func (in *Interner) Drain() *stringpool.Pool[byte] {
	for i := range in.shards {
		in.shards[i].mu.Lock()
	}
	defer func() {
		for i := range in.shards {
			in.shards[i].mu.Unlock()
		}
	}()

	pools := make([]*stringpool.Pool[byte], len(in.shards))
	for i := range in.shards {
		pools[i] = in.shards[i].pool
		in.shards[i].strings = make(map[string]string)
		in.shards[i].pool = stringpool.New(in.poolOpts...)
	}
	return stringpool.Merge(pools[0], pools[1:]...)
}

// Close releases the shard pools. Interned strings become invalid unless a
// prior Drain moved their storage out. The interner must not be used after
// Close.
func (in *Interner) Close() error {
	var errs []error
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		errs = append(errs, sh.pool.Close())
		sh.strings = nil
		sh.mu.Unlock()
	}
	return errors.Join(errs...)
}
