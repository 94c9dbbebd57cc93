package bigint

// Int is a signed arbitrary-precision integer. The zero value represents 0.
//
// An Int owns its digit buffer exclusively: cloning produces an
// independent buffer, and a single Int must not be mutated concurrently
// from more than one goroutine. Two distinct Ints may be used freely on
// different goroutines.
type Int struct {
	sign   Sign
	digits []Digit // little-endian; digits[0] is least significant
}

// Zero returns the integer 0.
func Zero() Int {
	return Int{}
}

// One returns the integer 1.
func One() Int {
	return Int{sign: Positive, digits: []Digit{1}}
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.sign == Zero
}

// IsPositive reports whether x > 0.
func (x Int) IsPositive() bool {
	return x.sign == Positive
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return x.sign == Negative
}

// Sign returns x's sign.
func (x Int) Sign() Sign {
	return x.sign
}

// Negate returns -x. Zero negates to itself.
func (x Int) Negate() Int {
	if x.sign == Zero {
		return x
	}
	return Int{sign: x.sign.Neg(), digits: x.digits}
}

// Clone returns an Int with an independent copy of x's digit buffer.
func (x Int) Clone() Int {
	if len(x.digits) == 0 {
		return Int{sign: x.sign}
	}
	d := make([]Digit, len(x.digits))
	copy(d, x.digits)
	return Int{sign: x.sign, digits: d}
}

// fromDigits builds a canonicalized Int from a sign and a digit slice,
// taking ownership of digits.
func fromDigits(sign Sign, digits []Digit) Int {
	z := Int{sign: sign, digits: digits}
	z.canonicalize()
	return z
}

// canonicalize trims trailing (most-significant) zero limbs and resets
// the sign to Zero if the buffer becomes empty. It must run on every
// return path that could leave leading zero limbs behind.
func (z *Int) canonicalize() {
	n := len(z.digits)
	for n > 0 && z.digits[n-1] == 0 {
		n--
	}
	z.digits = z.digits[:n]
	if n == 0 {
		z.sign = Zero
	}
}

// grow returns a copy of digits extended with zero limbs so that its
// length is at least n. If digits is already long enough, it is
// returned unchanged (not copied).
func grow(digits []Digit, n int) []Digit {
	if len(digits) >= n {
		return digits
	}
	out := make([]Digit, n)
	copy(out, digits)
	return out
}

// limbs returns x's magnitude as a little-endian Digit slice. The result
// shares storage with x; callers must not mutate it.
func (x Int) limbs() []Digit {
	return x.digits
}

// numLimbs returns the number of limbs in x's magnitude.
func (x Int) numLimbs() int {
	return len(x.digits)
}
