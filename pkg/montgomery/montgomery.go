// Package montgomery implements division-free modular arithmetic for odd
// 64-bit moduli.
//
// Values in Montgomery form are scaled by R = 2^64: a_M = a * R mod m.
// A Montgomery product of two Montgomery-form operands stays in Montgomery
// form, so a whole exponentiation runs on multiplications and shifts only.
package montgomery

import "math/bits"

// Inverse returns m^(-1) mod 2^64 for odd m.
// Newton-Raphson refinement doubles the number of correct low bits each step:
// m is its own inverse mod 8, so five steps reach 96 > 64 bits.
// Panics if m is even (zero included).
func Inverse(m uint64) uint64 {
	if m&1 == 0 {
		panic("montgomery: modulus must be odd")
	}
	inv := m             // correct mod 2^3
	inv *= 2 - m*inv     // mod 2^6
	inv *= 2 - m*inv     // mod 2^12
	inv *= 2 - m*inv     // mod 2^24
	inv *= 2 - m*inv     // mod 2^48
	inv *= 2 - m*inv     // mod 2^96
	return inv
}

// RSquared returns R^2 mod m with R = 2^64, the factor that lifts an operand
// into Montgomery form. Starts from R mod m and doubles with reduction 64
// times. Panics if m is even.
func RSquared(m uint64) uint64 {
	if m&1 == 0 {
		panic("montgomery: modulus must be odd")
	}
	r := -m % m // 2^64 mod m
	r2 := r
	for i := 0; i < 64; i++ {
		sum, carry := bits.Add64(r2, r2, 0)
		if carry != 0 || sum >= m {
			sum -= m
		}
		r2 = sum
	}
	return r2
}

// Context carries the per-modulus constants for Montgomery reduction. It is
// cheap to build and is recomputed per candidate; a caller may cache one
// keyed on the modulus without changing any result.
type Context struct {
	mod  uint64
	ninv uint64 // -m^(-1) mod 2^64
	r2   uint64 // R^2 mod m
	one  uint64 // R mod m, the Montgomery form of 1
}

// NewContext builds a context for an odd modulus. Panics for even moduli.
func NewContext(m uint64) Context {
	c := Context{mod: m, ninv: -Inverse(m), r2: RSquared(m)}
	c.one = c.Mul(c.r2, 1)
	return c
}

// Modulus returns the modulus the context was built for.
func (c *Context) Modulus() uint64 { return c.mod }

// One returns the Montgomery form of 1, R mod m.
func (c *Context) One() uint64 { return c.one }

// Mul returns the Montgomery product a*b*R^(-1) mod m.
// Both operands in Montgomery form yield a Montgomery-form product; one plain
// operand yields a plain product. The carry-out of the final addition handles
// moduli above 2^63.
func (c *Context) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q := lo * c.ninv
	qh, ql := bits.Mul64(q, c.mod)
	_, carry := bits.Add64(lo, ql, 0)
	r, over := bits.Add64(hi, qh, carry)
	if over != 0 || r >= c.mod {
		r -= c.mod
	}
	return r
}

// ToMont lifts a into Montgomery form.
func (c *Context) ToMont(a uint64) uint64 { return c.Mul(a, c.r2) }

// FromMont converts a Montgomery-form value back to a plain residue.
func (c *Context) FromMont(a uint64) uint64 { return c.Mul(a, 1) }
