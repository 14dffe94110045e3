// Package primality implements an exact primality test for 64-bit integers:
// a small-prime trial-division filter in front of a deterministic
// Miller-Rabin oracle.
//
// The oracle runs the published 7-base witness set proven complete for every
// integer below 2^64, with the auxiliary bases ordered by hashing the
// candidate into a fixed 2^18-entry table so that base-2 pseudoprimes meet a
// killing base early. The table affects evaluation order only, never the
// verdict.
package primality

// IsPrime reports whether x is prime. Exact for every uint64: no false
// positives or negatives.
func IsPrime(x uint64) bool {
	if x < 2 {
		return false
	}
	if x == 2 {
		return true
	}
	if x&1 == 0 {
		return false
	}
	switch defaultFilter.Classify(x) {
	case Composite:
		return false
	case SmallPrime:
		return true
	}
	if x < nextPrime*nextPrime {
		// survived the whole list, and any factor would be below 131
		return true
	}
	return isPrimeOracle(x)
}
