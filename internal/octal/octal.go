// Package octal renders and parses the fixed-width ASCII octal fields used
// throughout USTAR headers.
package octal

import "strconv"

// Format writes v as base-8 ASCII digits into dst, left-padded with '0' to
// fill the field. A value too wide for the field keeps only its low-order
// digits; callers are expected to validate bounds upstream. Negative values
// are undefined.
func Format(dst []byte, v int64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + v&7)
		v >>= 3
	}
}

// Parse reads a fixed-width octal field, ignoring the NUL and space bytes
// that frame it. Malformed or empty fields parse to 0 rather than erroring.
func Parse(field []byte) int64 {
	start := 0
	for start < len(field) && framing(field[start]) {
		start++
	}
	end := start
	for end < len(field) && !framing(field[end]) {
		end++
	}
	if start == end {
		return 0
	}
	v, err := strconv.ParseInt(string(field[start:end]), 8, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func framing(b byte) bool {
	return b == 0 || b == ' '
}
