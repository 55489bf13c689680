// Package stringpool provides block-based storage for immutable strings of
// generic code units.
//
// # Overview
//
// A Pool packs many variable-length strings into a small number of large
// blocks, trading the per-string overhead of individual allocations for one
// buffer per block. Strings are added once and never resized, moved, or
// individually freed; callers get back read-only views that stay valid for
// the lifetime of the owning pool.
//
// # Views
//
// Add returns a []T slice aliasing the pool's internal buffer. The slice is
// capped at the string's length, so appending to it copies out of the pool
// rather than corrupting neighbouring strings. Treat views as read-only:
// writing through a view mutates pool storage shared with nothing else, but
// the pool assumes stored strings never change.
//
// For byte pools, AddString and ViewString convert between string and view
// without copying.
//
// # Blocks and best fit
//
// The pool keeps its blocks sorted ascending by free space and serves each
// Add from the fullest block that still fits the string, locating it with a
// binary search. When no block fits, the pool allocates a new one of at
// least the standard block capacity (8192 units unless configured) and the
// ordering is repaired with at most one rotation. Oversized strings get a
// dedicated block of exactly the required size.
//
// # Terminators
//
// A pool built with WithTerminator reserves one extra unit per string and
// writes a zero unit after its content. Views never include the terminator,
// but code handing pooled bytes to C or to zero-terminated file formats can
// rely on it being there.
//
// # Merging
//
// Merge moves the blocks of several pools into a single pool without
// touching buffer contents, so existing views survive the merge. The source
// pools are left empty but remain usable.
//
// # Storage sources
//
// Block buffers come from a Source. The default HeapSource uses ordinary Go
// allocation; OffHeapSource places buffers in anonymous memory mappings
// outside the garbage collector's heap, which suits pools holding gigabytes
// of strings. Pools using off-heap storage must be closed with Close to
// return the mappings.
//
// # Usage Example
//
//	pool := stringpool.New[byte]()
//	defer pool.Close()
//
//	view, err := pool.Add([]byte("example"))
//	if err != nil {
//	    return err
//	}
//
//	// view aliases pool memory and stays valid until Close.
//	fmt.Println(string(view))
//
// # Thread Safety
//
// Pools are not thread-safe. Callers must synchronize access externally; the
// intern package provides a sharded, lock-protected layer on top for
// concurrent use.
//
// # Related Packages
//
//   - github.com/danielkrupinski/stringpool/intern: Concurrent string interning on pooled storage
//   - github.com/danielkrupinski/stringpool/units: Code unit conversions for wide and legacy encodings
package stringpool
