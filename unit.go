package stringpool

import (
	"unsafe"

	"github.com/danielkrupinski/stringpool/internal/buf"
)

// Unit is the set of code unit types a pool can store: bytes for UTF-8 or
// single-byte encodings, uint16 for UTF-16, and rune for UTF-32.
type Unit interface {
	~byte | ~uint16 | ~rune
}

// spaceFor returns the number of units needed to store a string of length n,
// including the terminator slot when terminate is set. ok is false when the
// padded length is not representable; no block can ever take such a string.
func spaceFor(n int, terminate bool) (space int, ok bool) {
	if !terminate {
		return n, true
	}
	return buf.AddOverflowSafe(n, 1)
}

// unitSize returns the width of T in bytes.
func unitSize[T Unit]() int {
	var u T
	return int(unsafe.Sizeof(u))
}
