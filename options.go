package stringpool

import "errors"

// Option configures a pool at construction time.
type Option[T Unit] func(*Pool[T])

// WithStandardBlockCapacity sets the capacity, in code units, of blocks the
// pool creates when an incoming string fits nowhere. Zero is legal: every
// string then gets a block of exactly its own size.
func WithStandardBlockCapacity[T Unit](capacity int) Option[T] {
	if capacity < 0 {
		panic(errors.New("stringpool: negative standard block capacity"))
	}
	return func(p *Pool[T]) { p.standard = capacity }
}

// WithTerminator makes the pool write a zero unit after every stored
// string. Views never include the terminator, but code handing pooled
// storage to zero-terminated consumers can rely on it being present.
func WithTerminator[T Unit]() Option[T] {
	return func(p *Pool[T]) { p.terminate = true }
}

// WithSource makes the pool draw block buffers from src instead of the
// default HeapSource.
func WithSource[T Unit](src Source[T]) Option[T] {
	return func(p *Pool[T]) { p.src = src }
}
