package bigint

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than
// y. Ordering is by sign first, then by magnitude (limb count, then
// limbs high-to-low) when signs agree.
func (x Int) Cmp(y Int) int {
	if x.sign != y.sign {
		return x.sign.Cmp(y.sign)
	}
	m := magCmp(x.digits, y.digits)
	if x.sign == Negative {
		return -m
	}
	return m
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}
