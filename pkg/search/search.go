// Package search finds representations of 8n+3 as a^2 + 2p with a odd and p
// prime, maximizing a. A query that exhausts the range without a prime is the
// counterexample signal for that n.
package search

import (
	"sqprime-search/pkg/intmath"
	"sqprime-search/pkg/primality"
)

// Result is one search outcome. The zero Result is the "no solution"
// sentinel; a valid solution always has odd A >= 1, so A == 0 cannot collide
// with one.
type Result struct {
	A     uint64
	P     uint64
	Found bool
}

// FindSolution returns the representation 8n+3 = a^2 + 2p with p prime and a
// the largest odd positive value admitting one, or the zero Result if no odd
// a in [1, aMax] works.
//
// The caller must keep n below (2^64-3)/8 so that 8n+3 is representable; the
// bound is a documented precondition, not a checked condition. A query is a
// pure function of n: no retries, no logging, no shared state, so callers may
// run independent queries concurrently without coordination.
func FindSolution(n uint64) Result {
	val := 8*n + 3
	return findSolution(val, oddRoot(val), nil)
}

// FindSolutionAt is FindSolution for a precomputed value 8n+3 and its largest
// odd root. Callers sweeping consecutive n can maintain both incrementally;
// the result is bit-identical to the single-argument form.
func FindSolutionAt(val, aMax uint64) Result {
	return findSolution(val, aMax, nil)
}

// FindSolutionObserved is FindSolution reporting every evaluated candidate to
// obs. Diagnostics only; the result is unaffected.
func FindSolutionObserved(n uint64, obs Observer) Result {
	val := 8*n + 3
	return findSolution(val, oddRoot(val), obs)
}

// oddRoot returns the largest odd a with a*a <= val.
func oddRoot(val uint64) uint64 {
	a := intmath.Sqrt(val)
	if a&1 == 0 {
		a--
	}
	return a
}

func findSolution(val, aMax uint64, obs Observer) Result {
	a := aMax
	sq := a * a
	p := (val - sq) / 2
	for {
		if obs != nil {
			obs.Candidate(a, p)
		}
		if p >= 2 && primality.IsPrime(p) {
			// a only ever decreases, so the first hit has the largest a
			return Result{A: a, P: p, Found: true}
		}
		if a < 3 {
			return Result{}
		}
		// (a-2)^2 = a^2 - 4(a-1), no re-multiplication per step
		sq -= 4 * (a - 1)
		a -= 2
		p = (val - sq) / 2
	}
}
