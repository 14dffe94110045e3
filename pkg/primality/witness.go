package primality

import (
	"math/bits"

	"golang.org/x/crypto/sha3"

	"sqprime-search/pkg/montgomery"
)

const (
	tableBits = 18
	tableSize = 1 << tableBits
)

// witnessSeed is expanded by SHAKE-128 into the bucket-to-base assignment,
// making the table fully reproducible.
const witnessSeed = "sqprime-search witness table v5"

// witnessPool holds the auxiliary bases of the published deterministic
// 7-base set for 64-bit integers: {2} plus these six witness every composite
// below 2^64. The oracle always evaluates the whole pool; the table only
// chooses which member runs first.
var witnessPool = [6]uint32{325, 9375, 28178, 450775, 9780504, 1795265022}

// witnessBases maps each hash bucket to the pool base tried first after
// base 2. Purely an evaluation-order device: a base-2 pseudoprime usually
// dies on its first pool base, a prime pays the full set either way.
// Filled once at init and never mutated; concurrent readers need no
// synchronization.
var witnessBases [tableSize]uint32

func init() {
	h := sha3.NewShake128()
	h.Write([]byte(witnessSeed))
	stream := make([]byte, tableSize)
	h.Read(stream)
	for i, b := range stream {
		witnessBases[i] = witnessPool[int(b)%len(witnessPool)]
	}
}

// tableIndex hashes a candidate into the witness table: two rounds of
// xor-shift and odd-constant multiplication, masked to the table width.
func tableIndex(x uint64) uint32 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return uint32(x & (tableSize - 1))
}

// strongProbablePrime runs one Miller-Rabin witness round for the modulus of
// c, with c.Modulus()-1 = d * 2^s, entirely in Montgomery form.
func strongProbablePrime(c *montgomery.Context, base, d uint64, s uint) bool {
	n := c.Modulus()
	base %= n
	if base == 0 {
		// base is a multiple of n and cannot witness
		return true
	}
	x := c.ToMont(base)
	r := c.One()
	for e := d; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = c.Mul(r, x)
		}
		x = c.Mul(x, x)
	}
	one := c.One()
	minusOne := n - one
	if r == one || r == minusOne {
		return true
	}
	for i := uint(1); i < s; i++ {
		r = c.Mul(r, r)
		if r == minusOne {
			return true
		}
		if r == one {
			// reached 1 without passing -1: a nontrivial square root of 1
			return false
		}
	}
	return false
}

// isPrimeOracle is the deterministic witness test for odd candidates above
// the trial-division range. Base 2 runs first, then the complete auxiliary
// pool, starting with the table-selected member so that base-2 pseudoprimes
// fail as early as possible. Exactness rests on the full set, never on the
// table contents.
func isPrimeOracle(x uint64) bool {
	return oracleWithFirst(x, uint64(witnessBases[tableIndex(x)]))
}

// oracleWithFirst runs base 2 and then the complete pool, trying first
// before the rest. The verdict is independent of first.
func oracleWithFirst(x, first uint64) bool {
	c := montgomery.NewContext(x)
	d := x - 1
	s := uint(bits.TrailingZeros64(d))
	d >>= s
	if !strongProbablePrime(&c, 2, d, s) {
		return false
	}
	if !strongProbablePrime(&c, first, d, s) {
		return false
	}
	for _, b := range witnessPool {
		if uint64(b) == first {
			continue
		}
		if !strongProbablePrime(&c, uint64(b), d, s) {
			return false
		}
	}
	return true
}
