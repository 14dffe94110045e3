package primality

import "sqprime-search/pkg/montgomery"

// Class is the verdict of the trial-division pre-filter.
type Class uint8

const (
	// Undetermined means no listed prime divides the candidate.
	Undetermined Class = iota
	// Composite means a listed prime strictly divides the candidate.
	Composite
	// SmallPrime means the candidate equals a listed prime.
	SmallPrime
)

// smallPrimes is the filter list: the 30 smallest odd primes, ascending for
// early exit. The length is a throughput knob (cumulative filter rate versus
// per-check cost), not a correctness parameter.
var smallPrimes = [30]uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31,
	37, 41, 43, 47, 53, 59, 61, 67, 71, 73,
	79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
}

// nextPrime is the first prime past the filter list. A candidate below its
// square that survives the filter has no proper factor at all.
const nextPrime = 131

// A Divider locates small-prime factors. Implementations differ only in how
// a division is carried out; every implementation must report the same first
// factor for the same input.
type Divider interface {
	// FirstFactor returns the first listed prime dividing x.
	FirstFactor(x uint64) (p uint64, ok bool)
}

// ModDivider divides with the hardware remainder.
type ModDivider struct{}

// FirstFactor implements Divider.
func (ModDivider) FirstFactor(x uint64) (uint64, bool) {
	for _, p := range smallPrimes {
		if x%p == 0 {
			return p, true
		}
	}
	return 0, false
}

// ReciprocalDivider replaces each division with a multiplication: for odd p,
// p divides x exactly when x * p^(-1) mod 2^64 is at most (2^64-1)/p.
type ReciprocalDivider struct {
	inv [len(smallPrimes)]uint64
	lim [len(smallPrimes)]uint64
}

// NewReciprocalDivider precomputes the inverse and quotient limit of every
// listed prime.
func NewReciprocalDivider() *ReciprocalDivider {
	d := new(ReciprocalDivider)
	for i, p := range smallPrimes {
		d.inv[i] = montgomery.Inverse(p)
		d.lim[i] = ^uint64(0) / p
	}
	return d
}

// FirstFactor implements Divider.
func (d *ReciprocalDivider) FirstFactor(x uint64) (uint64, bool) {
	for i, p := range smallPrimes {
		if x*d.inv[i] <= d.lim[i] {
			return p, true
		}
	}
	return 0, false
}

// Filter classifies candidates against the small-prime list with a chosen
// division strategy.
type Filter struct {
	div Divider
}

// NewFilter builds a filter around the given strategy.
func NewFilter(d Divider) *Filter { return &Filter{div: d} }

// Classify runs the pre-filter: the first listed prime dividing x decides
// (equality means x is that prime), no divisor means Undetermined.
func (f *Filter) Classify(x uint64) Class {
	p, ok := f.div.FirstFactor(x)
	if !ok {
		return Undetermined
	}
	if x == p {
		return SmallPrime
	}
	return Composite
}

var defaultFilter = NewFilter(ModDivider{})

// Classify runs the pre-filter with the default modulo strategy.
func Classify(x uint64) Class { return defaultFilter.Classify(x) }
