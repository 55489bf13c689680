// Package buf provides overflow-safe arithmetic for sizing block buffers.
//
// Block capacities are unit counts chosen by callers, so every computation
// that derives a byte size or a padded length from them has to tolerate
// adversarial inputs without wrapping around.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int. Callers use it to pad a string length with a terminator slot.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. Callers use it for unitCount * unitSize byte sizing.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	switch {
	case a > 0 && b > 0:
		if a > math.MaxInt/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < math.MaxInt/b {
			return 0, false
		}
	case a > 0: // b < 0
		if b < math.MinInt/a {
			return 0, false
		}
	default: // a < 0, b > 0
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}
