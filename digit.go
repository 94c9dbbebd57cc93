//go:build !bigint_digit32 && !bigint_digit16

package bigint

import "math/bits"

// Digit is a single limb of a multi-precision unsigned integer. This
// build uses 64-bit limbs; build with -tags bigint_digit32 or
// -tags bigint_digit16 to select a narrower width.
type Digit uint64

// DigitBits is the width of a Digit in bits.
const DigitBits = 64

// digitMax is the largest representable Digit, i.e. B-1.
const digitMax = ^Digit(0)

// addWW computes z0 = x+y+c and the carry out of the top bit, with
// c, carry in {0, 1}.
func addWW(x, y, c Digit) (z0, carry Digit) {
	s, cout := bits.Add64(uint64(x), uint64(y), uint64(c))
	return Digit(s), Digit(cout)
}

// subWW computes z0 = x-y-b and the borrow out of the top bit, with
// b, borrow in {0, 1}.
func subWW(x, y, b Digit) (z0, borrow Digit) {
	d, bout := bits.Sub64(uint64(x), uint64(y), uint64(b))
	return Digit(d), Digit(bout)
}

// mulWW computes the full double-width product x*y, returning the low
// and high halves.
func mulWW(x, y Digit) (lo, hi Digit) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	return Digit(l), Digit(h)
}

// mulAddWWW computes x*y+c, returning the low and high halves of the
// double-width result.
func mulAddWWW(x, y, c Digit) (lo, hi Digit) {
	hi2, lo2 := bits.Mul64(uint64(x), uint64(y))
	lo2, cout := bits.Add64(lo2, uint64(c), 0)
	hi2 += cout
	return Digit(lo2), Digit(hi2)
}

// divWW computes q = (hi<<DigitBits + lo) / y and r = the remainder.
// It panics if the quotient would overflow a Digit (i.e. hi >= y).
func divWW(hi, lo, y Digit) (q, r Digit) {
	quo, rem := bits.Div64(uint64(hi), uint64(lo), uint64(y))
	return Digit(quo), Digit(rem)
}

// leadingZeros returns the number of leading zero bits in x.
func leadingZeros(x Digit) uint {
	return uint(bits.LeadingZeros64(uint64(x)))
}

// bitLen returns the number of bits required to represent x; bitLen(0) == 0.
func bitLen(x Digit) int {
	return bits.Len64(uint64(x))
}
