// Package conv provides safe integer conversion helpers for the automata engine.
//
// State IDs are stored as uint32 for compact representation. These helpers
// perform bounds checking before narrowing conversions and panic on overflow,
// since an overflow indicates a programming error (an automaton larger than
// the engine's internal limits).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
