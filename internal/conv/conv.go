// Package conv provides a safe integer conversion helper for the
// bytecode generator's program-counter bookkeeping.
//
// It panics on overflow since that indicates a programming error
// internal to codegen, not a malformed pattern — malformed-pattern-
// scale overflow is caught earlier as a codegen.PCOverflow error via
// the generator's own maxLen check.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
