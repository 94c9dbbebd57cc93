package bigint

// This file implements Int's arithmetic operators. The sign-dispatch
// tables mirror math/big's Int.Add/Sub/Mul exactly (see math/big's
// int.go), generalized onto this package's own Digit-slice primitives.

// Add returns x+y.
func (x Int) Add(y Int) Int {
	var z Int
	z.setAdd(x, y)
	return z
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	var z Int
	z.setSub(x, y)
	return z
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	var z Int
	z.setMul(x, y)
	return z
}

// AddAssign sets z = x+y and returns z, the pointer-receiver
// counterpart to Add. It does not reuse x's buffer: the sum is always
// written to a newly allocated one.
func (z *Int) AddAssign(x, y Int) *Int {
	z.setAdd(x, y)
	return z
}

// SubAssign sets z = x-y and returns z.
func (z *Int) SubAssign(x, y Int) *Int {
	z.setSub(x, y)
	return z
}

// MulAssign sets z = x*y and returns z.
func (z *Int) MulAssign(x, y Int) *Int {
	z.setMul(x, y)
	return z
}

func (z *Int) setAdd(x, y Int) {
	switch {
	case x.sign == Zero:
		*z = y.Clone()
	case y.sign == Zero:
		*z = x.Clone()
	case x.sign == y.sign:
		n := len(x.digits)
		if len(y.digits) > n {
			n = len(y.digits)
		}
		digits := make([]Digit, n)
		copy(digits, x.digits)
		c := sadd(digits, y.digits)
		if c != 0 {
			digits = append(digits, c)
		}
		*z = fromDigits(x.sign, digits)
	case x.sign == Positive: // y.sign == Negative
		*z = x.Sub(y.Negate())
	default: // x.sign == Negative, y.sign == Positive
		*z = y.Sub(x.Negate())
	}
}

func (z *Int) setSub(x, y Int) {
	switch {
	case x.sign == Positive && y.sign == Positive:
		n := len(x.digits)
		if len(y.digits) > n {
			n = len(y.digits)
		}
		lhs := grow(append([]Digit(nil), x.digits...), n)
		rhs := grow(append([]Digit(nil), y.digits...), n)
		s := ssub(lhs, rhs)
		switch s {
		case Negative:
			*z = fromDigits(Negative, lhs)
		case Zero:
			*z = Zero()
		default:
			*z = fromDigits(Positive, lhs)
		}
	case x.sign == Positive && y.sign == Negative:
		*z = x.Add(y.Negate())
	case x.sign == Negative && y.sign == Negative:
		*z = y.Negate().Sub(x.Negate())
	case x.sign == Zero:
		*z = y.Negate()
	case y.sign == Zero:
		*z = x
	default: // x.sign == Negative, y.sign == Positive
		*z = x.Negate().Add(y).Negate()
	}
}

func (z *Int) setMul(x, y Int) {
	if x.sign == Zero || y.sign == Zero {
		*z = Zero()
		return
	}
	target := make([]Digit, len(x.digits)+len(y.digits))
	mul3(target, x.digits, y.digits)
	*z = fromDigits(x.sign.Mul(y.sign), target)
}

// AddDigit returns x+d for a nonnegative single-limb d.
func (x Int) AddDigit(d Digit) Int {
	if d == 0 {
		return x
	}
	switch x.sign {
	case Zero:
		return Int{sign: Positive, digits: []Digit{d}}
	case Positive:
		digits := append([]Digit(nil), x.digits...)
		c := saddDigit(digits, d)
		if c != 0 {
			digits = append(digits, c)
		}
		return fromDigits(Positive, digits)
	default: // Negative: x + d = -(|x|-d), or d-|x| if |x| < d
		digits := append([]Digit(nil), x.digits...)
		if dsub(digits, d) {
			return Int{sign: Positive, digits: []Digit{d - x.digits[0]}}
		}
		return fromDigits(Negative, digits)
	}
}

// SubDigit returns x-d for a nonnegative single-limb d.
func (x Int) SubDigit(d Digit) Int {
	if d == 0 {
		return x
	}
	switch x.sign {
	case Zero:
		return Int{sign: Negative, digits: []Digit{d}}
	case Positive:
		digits := append([]Digit(nil), x.digits...)
		if dsub(digits, d) {
			// |x| < d: x must have been a single limb smaller than d.
			return Int{sign: Negative, digits: []Digit{d - x.digits[0]}}
		}
		return fromDigits(Positive, digits)
	default: // Negative: x - d = -(|x|+d)
		digits := append([]Digit(nil), x.digits...)
		c := saddDigit(digits, d)
		if c != 0 {
			digits = append(digits, c)
		}
		return fromDigits(Negative, digits)
	}
}

// MulDigit returns x*d.
func (x Int) MulDigit(d Digit) Int {
	if x.sign == Zero || d == 0 {
		return Zero()
	}
	digits := append([]Digit(nil), x.digits...)
	c := dmul(digits, d)
	if c != 0 {
		digits = append(digits, c)
	}
	return fromDigits(x.sign, digits)
}
