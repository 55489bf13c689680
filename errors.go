package stringpool

import "errors"

var (
	// ErrTooLarge indicates a block capacity whose byte size is not
	// representable on this platform.
	ErrTooLarge = errors.New("stringpool: block capacity too large")
)
