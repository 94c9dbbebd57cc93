package bigint

// This file implements the carry-propagating primitives that operate
// directly on raw Digit slices, with signs handled by the caller. Every
// function here requires its preconditions to hold on entry; violating
// them (e.g. calling sadd with len(lhs) < len(rhs)) is a programmer
// error and panics rather than producing a silently wrong result.

// sadd adds rhs into lhs in place, propagating carry through the rest of
// lhs once rhs is exhausted, and returns the carry out of the top limb.
// Requires len(lhs) >= len(rhs).
func sadd(lhs, rhs []Digit) Digit {
	if len(lhs) < len(rhs) {
		panic("bigint: sadd requires len(lhs) >= len(rhs)")
	}
	var c Digit
	i := 0
	for ; i < len(rhs); i++ {
		lhs[i], c = addWW(lhs[i], rhs[i], c)
	}
	for ; c != 0 && i < len(lhs); i++ {
		lhs[i], c = addWW(lhs[i], 0, c)
	}
	return c
}

// saddDigit adds d into lhs[0], propagating carry up the slice, and
// returns the carry out of the top limb.
func saddDigit(lhs []Digit, d Digit) Digit {
	if len(lhs) == 0 {
		return d
	}
	var c Digit
	lhs[0], c = addWW(lhs[0], d, 0)
	for i := 1; c != 0 && i < len(lhs); i++ {
		lhs[i], c = addWW(lhs[i], 0, c)
	}
	return c
}

// ssub subtracts rhs from lhs in place and reports the sign of the true
// mathematical result. Requires len(lhs) >= len(rhs).
//
// If |rhs| > |lhs| (a borrow escapes the top of lhs), lhs is left holding
// the two's-complement-style remainder of the subtraction; ssub
// complements and increments it so the caller sees the correct magnitude
// of |rhs|-|lhs|, and reports Negative. Callers must treat this function
// as atomic: do not inspect lhs between the borrow occurring and this
// complement step, which happens before ssub returns.
func ssub(lhs, rhs []Digit) Sign {
	if len(lhs) < len(rhs) {
		panic("bigint: ssub requires len(lhs) >= len(rhs)")
	}
	var b Digit
	i := 0
	nonzero := false
	for ; i < len(rhs); i++ {
		var d Digit
		d, b = subWW(lhs[i], rhs[i], b)
		lhs[i] = d
		nonzero = nonzero || d != 0
	}
	for ; b != 0 && i < len(lhs); i++ {
		var d Digit
		d, b = subWW(lhs[i], 0, b)
		lhs[i] = d
		nonzero = nonzero || d != 0
	}
	for ; i < len(lhs); i++ {
		nonzero = nonzero || lhs[i] != 0
	}
	if b != 0 {
		// Borrow escaped: lhs currently holds the two's complement of
		// the true magnitude. Complement and increment in place.
		for j := range lhs {
			lhs[j] = digitMax - lhs[j]
		}
		saddDigit(lhs, 1)
		return Negative
	}
	if !nonzero {
		return Zero
	}
	return Positive
}

// ssubSign is the pure variant of ssub: it clones lhs, subtracts rhs from
// the clone, and returns both the sign and the resulting digit slice.
func ssubSign(lhs, rhs []Digit) (Sign, []Digit) {
	out := make([]Digit, len(lhs))
	copy(out, lhs)
	s := ssub(out, rhs)
	return s, out
}

// ssubDigit subtracts d from lhs[0], borrowing up the slice, and reports
// whether a final borrow escaped the top of lhs.
func ssubDigit(lhs []Digit, d Digit) bool {
	return dsub(lhs, d)
}

// dsub subtracts d from lhs in place (borrowing up the slice) and
// reports whether the final borrow escaped.
func dsub(lhs []Digit, d Digit) bool {
	if len(lhs) == 0 {
		return d != 0
	}
	var b Digit
	lhs[0], b = subWW(lhs[0], d, 0)
	for i := 1; b != 0 && i < len(lhs); i++ {
		lhs[i], b = subWW(lhs[i], 0, b)
	}
	return b != 0
}

// dmul multiplies every limb of lhs by d in place, accumulating the high
// half of each product as the carry into the next limb, and returns the
// final carry out of the top limb.
func dmul(lhs []Digit, d Digit) Digit {
	var c Digit
	for i := range lhs {
		lo, hi := mulAddWWW(lhs[i], d, c)
		lhs[i] = lo
		c = hi
	}
	return c
}

// addVV is sadd under the math/big naming convention, used where the
// slices being added are known to have equal length (the hot path of
// nMul3/kMul3 accumulation). z, x, y must all have the same length.
func addVV(z, x, y []Digit) Digit {
	var c Digit
	for i := range z {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// subVV mirrors addVV for subtraction: z = x - y, all equal length.
func subVV(z, x, y []Digit) Digit {
	var b Digit
	for i := range z {
		z[i], b = subWW(x[i], y[i], b)
	}
	return b
}
