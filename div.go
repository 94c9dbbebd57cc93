package bigint

// This file implements division: a single-limb fast path (shortDivMod)
// and full multi-precision long division via Knuth's Algorithm D
// (divMod), grounded on Go's legacy math/big arith.go divWVW_g loop
// structure and bford-go nat.go's divLarge, generalized onto this
// package's own Digit primitives.

// shortDivMod divides the magnitude n by the single limb d, returning
// the quotient limbs and (if wantRemainder) the remainder. Panics if
// d == 0.
func shortDivMod(n []Digit, d Digit, wantRemainder bool) (q []Digit, r Digit, hasRemainder bool) {
	if d == 0 {
		panic("bigint: division by zero")
	}
	if len(n) == 0 {
		return nil, 0, false
	}
	q = make([]Digit, len(n))
	var rem Digit
	for i := len(n) - 1; i >= 0; i-- {
		q[i], rem = divWW(rem, n[i], d)
	}
	q = trimmed(q)
	if wantRemainder {
		return q, rem, true
	}
	return q, 0, false
}

// divMod divides the magnitude u by the magnitude v using Knuth's
// Algorithm D (TAOCP Vol. 2, 4.3.1), returning the quotient and
// (optionally) the remainder. Panics if v is zero (empty).
func divMod(u, v []Digit, wantRemainder bool) (q, r []Digit) {
	v = trimmed(v)
	if len(v) == 0 {
		panic("bigint: division by zero")
	}
	u = trimmed(u)

	switch {
	case len(u) == 0:
		return nil, nil
	case magCmp(u, v) == 0:
		return []Digit{1}, nil
	case magCmp(u, v) < 0:
		if wantRemainder {
			r = append([]Digit(nil), u...)
		}
		return nil, r
	case len(v) == 1:
		qq, rem, _ := shortDivMod(u, v[0], true)
		if wantRemainder && rem != 0 {
			r = []Digit{rem}
		}
		return qq, r
	}

	// 1. Normalize: shift both operands so v's leading limb has its top
	// bit set. This bounds the trial-quotient error to at most 2.
	s := leadingZeros(v[len(v)-1])
	vn := append([]Digit(nil), v...)
	shlBitsInPlace(vn, s)

	un := make([]Digit, len(u)+1)
	copy(un, u)
	shlBitsInPlace(un, s)

	n := len(vn)
	m := len(un) - n - 1

	qDigits := make([]Digit, m+1)

	// 2-3. Main loop, j from m down to 0.
	for j := m; j >= 0; j-- {
		dividendHi := un[j+n]
		dividendLo := un[j+n-1]

		var qhat, rhat Digit
		var rhatOverflow bool
		if dividendHi == vn[n-1] {
			qhat = digitMax
			var c Digit
			rhat, c = addWW(dividendLo, vn[n-1], 0)
			rhatOverflow = c != 0
		} else {
			qhat, rhat = divWW(dividendHi, dividendLo, vn[n-1])
		}

		u2 := un[j+n-2] // n >= 2 here: the len(v) == 1 case returned above
		for !rhatOverflow {
			lo, hi := mulWW(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= u2) {
				break
			}
			qhat--
			var c Digit
			rhat, c = addWW(rhat, vn[n-1], 0)
			rhatOverflow = c != 0
		}

		// 3d-3f. u[j..j+n] -= qhat*v, with add-back on over-subtraction.
		if mulSubAt(un[j:j+n+1], vn, qhat) {
			qhat--
			c := sadd(un[j:j+n], vn)
			un[j+n] += c
		}
		qDigits[j] = qhat
	}

	qDigits = trimmed(qDigits)

	if wantRemainder {
		rem := un[:n]
		shrBitsInPlace(rem, s)
		r = trimmed(rem)
	}
	return qDigits, r
}

// mulSubAt computes window -= qhat*v in place, where window spans n+1
// limbs and v spans n limbs (v is treated as padded with a leading zero
// limb), and reports whether the subtraction borrowed past the top of
// window — meaning qhat was one too large.
func mulSubAt(window, v []Digit, qhat Digit) bool {
	scratch := make([]Digit, len(window))
	copy(scratch, v)
	scratch[len(v)] = dmul(scratch[:len(v)], qhat)
	return subVV(window, window, scratch) != 0
}

// shlBitsInPlace shifts z left by k bits (0 <= k < DigitBits) in place.
// Any bits shifted out of z's top limb are lost unless the caller has
// reserved an extra zero limb at the top of z to catch them.
func shlBitsInPlace(z []Digit, k uint) {
	if k == 0 {
		return
	}
	var carry Digit
	for i := 0; i < len(z); i++ {
		next := z[i] >> (DigitBits - k)
		z[i] = (z[i] << k) | carry
		carry = next
	}
}

// shrBitsInPlace shifts z right by k bits (0 <= k < DigitBits) in place.
func shrBitsInPlace(z []Digit, k uint) {
	if k == 0 {
		return
	}
	var carry Digit
	for i := len(z) - 1; i >= 0; i-- {
		next := z[i] << (DigitBits - k)
		z[i] = (z[i] >> k) | carry
		carry = next
	}
}

// DivMod returns the Euclidean quotient and remainder of x/y: the
// remainder is always nonnegative (0 <= r < |y|), following math/big's
// Int.DivMod convention rather than truncated (Quo/Rem) division.
func (x Int) DivMod(y Int) (quotient, remainder Int) {
	q, r := x.QuoRem(y)
	if r.IsNegative() {
		if y.IsPositive() {
			q = q.SubDigit(1)
			r = r.Add(y)
		} else {
			q = q.AddDigit(1)
			r = r.Sub(y)
		}
	}
	return q, r
}

// QuoRem returns the truncated quotient and remainder of x/y (quotient
// rounds toward zero; remainder takes x's sign), following math/big's
// Int.QuoRem convention. Panics if y is zero.
func (x Int) QuoRem(y Int) (quotient, remainder Int) {
	if y.sign == Zero {
		panic("bigint: division by zero")
	}
	if x.sign == Zero {
		return Zero(), Zero()
	}
	q, r := divMod(x.digits, y.digits, true)
	quotient = fromDigits(x.sign.Mul(y.sign), q)
	remainder = fromDigits(x.sign, r)
	return quotient, remainder
}

// QuoDigit returns the truncated quotient of x/d.
func (x Int) QuoDigit(d Digit) Int {
	q, _, _ := shortDivMod(x.digits, d, false)
	return fromDigits(x.sign, q)
}

// RemDigit returns the truncated remainder of x/d (takes x's sign).
func (x Int) RemDigit(d Digit) Int {
	_, r, _ := shortDivMod(x.digits, d, true)
	if r == 0 {
		return Zero()
	}
	return fromDigits(x.sign, []Digit{r})
}

// DivDigit returns the Euclidean (nonnegative-remainder) quotient of x/d.
func (x Int) DivDigit(d Digit) Int {
	q, r := x.ModDivHelper(d)
	_ = r
	return q
}

// ModDivHelper computes the Euclidean quotient and remainder of x/d in
// one pass, reused by DivDigit and ModDigit.
func (x Int) ModDivHelper(d Digit) (quotient, remainder Int) {
	q, r, _ := shortDivMod(x.digits, d, true)
	if r == 0 {
		return fromDigits(x.sign, q), Zero()
	}
	if x.sign != Negative {
		return fromDigits(x.sign, q), Int{sign: Positive, digits: []Digit{r}}
	}
	// x negative, truncated remainder is -r; Euclidean form adds d back
	// and bumps the quotient by one toward negative infinity.
	adjustedQ := append([]Digit(nil), q...)
	c := saddDigit(adjustedQ, 1)
	if c != 0 {
		adjustedQ = append(adjustedQ, c)
	}
	return fromDigits(Negative, adjustedQ), Int{sign: Positive, digits: []Digit{d - r}}
}

// ModDigit returns the Euclidean (nonnegative) remainder of x/d.
func (x Int) ModDigit(d Digit) Int {
	_, r := x.ModDivHelper(d)
	return r
}
