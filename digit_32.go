//go:build bigint_digit32

package bigint

import "math/bits"

// Digit is a single limb of a multi-precision unsigned integer. This
// build uses 32-bit limbs (tag bigint_digit32).
type Digit uint32

// DigitBits is the width of a Digit in bits.
const DigitBits = 32

const digitMax = ^Digit(0)

func addWW(x, y, c Digit) (z0, carry Digit) {
	s, cout := bits.Add32(uint32(x), uint32(y), uint32(c))
	return Digit(s), Digit(cout)
}

func subWW(x, y, b Digit) (z0, borrow Digit) {
	d, bout := bits.Sub32(uint32(x), uint32(y), uint32(b))
	return Digit(d), Digit(bout)
}

func mulWW(x, y Digit) (lo, hi Digit) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	return Digit(l), Digit(h)
}

func mulAddWWW(x, y, c Digit) (lo, hi Digit) {
	hi2, lo2 := bits.Mul32(uint32(x), uint32(y))
	lo2, cout := bits.Add32(lo2, uint32(c), 0)
	hi2 += cout
	return Digit(lo2), Digit(hi2)
}

func divWW(hi, lo, y Digit) (q, r Digit) {
	quo, rem := bits.Div32(uint32(hi), uint32(lo), uint32(y))
	return Digit(quo), Digit(rem)
}

func leadingZeros(x Digit) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

func bitLen(x Digit) int {
	return bits.Len32(uint32(x))
}
