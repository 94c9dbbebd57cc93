package bigint

// This file implements the schoolbook and Karatsuba multiplication
// kernels. Both operate on raw Digit slices and accumulate into a
// caller-supplied, caller-zeroed target buffer (target += a*b), mirroring
// math/big's nat.mul / nat.karatsuba split between allocation and kernel.

// karatsubaThreshold is the limb count of the shorter operand at or below
// which mul3 uses the schoolbook kernel instead of recursing into Karatsuba.
const karatsubaThreshold = 16

// nMul3 computes target += a*b using schoolbook multiply-accumulate.
// target must be zeroed and at least len(a)+len(b) limbs long (relative
// to whatever offset the caller is accumulating into).
func nMul3(target, a, b []Digit) {
	if len(b) == 0 {
		return
	}
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		c := addMulDigit(target[i:i+len(b)], b, ai)
		k := i + len(b)
		for c != 0 && k < len(target) {
			target[k], c = addWW(target[k], c, 0)
			k++
		}
	}
}

// addMulDigit computes z[j] += x[j]*y for every j, with the carry between
// limbs folded internally, and returns the carry out of the top limb of
// z. This is the inner sweep nMul3's outer loop over a drives once per
// nonzero limb of a; per-call the running carry begins at zero, which is
// exactly the "next outer iteration begins with a zero carry" contract
// the schoolbook kernel requires.
func addMulDigit(z, x []Digit, y Digit) Digit {
	var c Digit
	for j := range z {
		lo, hi := mulAddWWW(x[j], y, c)
		var c2 Digit
		z[j], c2 = addWW(z[j], lo, 0)
		c = hi + c2
	}
	return c
}

// kMul3 computes target += x*y using Karatsuba's algorithm, falling back
// to nMul3 below karatsubaThreshold. target must be zeroed and long
// enough to hold the full product at the offset the caller is
// accumulating into.
func kMul3(target, x, y []Digit) {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold || len(y) < 2 {
		nMul3(target, x, y)
		return
	}

	k := len(y) / 2
	x0, x1 := x[:k], x[k:]
	y0, y1 := y[:k], y[k:]

	z0 := make([]Digit, len(x0)+len(y0))
	mul3(z0, x0, y0)

	z2 := make([]Digit, len(x1)+len(y1))
	mul3(z2, x1, y1)

	// z1 = x1*y0 + x0*y1 = z2 + z0 + sign(xd)*sign(yd)*|xd|*|yd|
	// where xd = x1-x0, yd = y0-y1 (Karatsuba's three-multiply identity).
	xd, sx := magSub(x1, x0)
	yd, sy := magSub(y0, y1)
	midSign := sx.Mul(sy)

	// Sized generously (rather than tightly) so addAt/subAtNoEscape below
	// never need to propagate a carry past the end of the buffer.
	mid := make([]Digit, len(x)+len(y)+1)
	addAt(mid, z0, 0)
	addAt(mid, z2, 0)
	if midSign != Zero {
		cross := make([]Digit, len(xd)+len(yd))
		mul3(cross, xd, yd)
		if midSign == Positive {
			addAt(mid, cross, 0)
		} else {
			subAtNoEscape(mid, cross, 0)
		}
	}

	addAt(target, z0, 0)
	addAt(target, trimmed(mid), k)
	addAt(target, z2, 2*k)
}

// mul3 dispatches target += a*b across the three multiplication tiers
// (schoolbook, Karatsuba, and the FFT bridge) based on the limb count of
// the shorter operand.
func mul3(target, a, b []Digit) {
	short := len(a)
	if len(b) < short {
		short = len(b)
	}
	switch {
	case short == 0:
		return
	case short <= karatsubaThreshold:
		nMul3(target, a, b)
	case short > fftThreshold:
		fftMul3(target, a, b)
	default:
		kMul3(target, a, b)
	}
}

// trimmed returns a with trailing (most-significant) zero limbs dropped.
// It shares storage with a.
func trimmed(a []Digit) []Digit {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// magCmp compares two nonnegative magnitudes, returning -1, 0, or 1.
func magCmp(a, b []Digit) int {
	a, b = trimmed(a), trimmed(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magSub returns |a-b| and the sign of (a-b), treating a and b as
// nonnegative magnitudes of independent length.
func magSub(a, b []Digit) ([]Digit, Sign) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	ap := make([]Digit, n)
	copy(ap, a)
	bp := make([]Digit, n)
	copy(bp, b)
	switch magCmp(ap, bp) {
	case 0:
		return nil, Zero
	case 1:
		ssub(ap, bp)
		return ap, Positive
	default:
		ssub(bp, ap)
		return bp, Negative
	}
}

// addAt adds src into dst at limb offset i, propagating carry beyond the
// window src occupies. dst must be long enough to absorb it.
func addAt(dst, src []Digit, i int) {
	if len(src) == 0 {
		return
	}
	c := sadd(dst[i:i+len(src)], src)
	k := i + len(src)
	for c != 0 && k < len(dst) {
		dst[k], c = addWW(dst[k], 0, c)
		k++
	}
}

// subAtNoEscape subtracts src from dst at limb offset i, propagating the
// borrow beyond the window src occupies. Unlike ssub, it assumes the
// borrow never escapes the top of dst (callers must guarantee dst's
// magnitude is already >= src shifted by i limbs, as Karatsuba's
// combination step does), so it does no complement-on-escape handling.
func subAtNoEscape(dst, src []Digit, i int) {
	if len(src) == 0 {
		return
	}
	window := dst[i : i+len(src)]
	b := subVV(window, window, src)
	for k := i + len(src); b != 0 && k < len(dst); k++ {
		dst[k], b = subWW(dst[k], 0, b)
	}
}
