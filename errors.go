package ustar

import "errors"

// Sentinel errors.
var (
	// ErrClosed is returned when writing an entry to an encoder whose
	// archive terminator has already been written.
	ErrClosed = errors.New("ustar: encoder closed")
)
