// Package order converts between the big-endian form used for arithmetic and
// the reversed byte order of the NUMERIC wire format.
package order

import "slices"

// Reverse returns a copy of data with the byte order reversed. Reverse is its
// own inverse.
func Reverse(data []byte) []byte {
	out := slices.Clone(data)
	slices.Reverse(out)

	return out
}
