// Package intmath provides exact integer arithmetic helpers for the search.
package intmath

import "math"

// maxRoot is the largest possible floor square root of a uint64.
const maxRoot = 1<<32 - 1

// Sqrt returns the largest r with r*r <= x. Exact over the full uint64 range;
// the float64 estimate can be off by one in either direction near 2^52 and
// rounds up to 2^32 at the very top, both fixed by the correction steps.
func Sqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(x)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > x {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= x {
		r++
	}
	return r
}
