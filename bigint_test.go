package bigint

import (
	"testing"
	"testing/quick"

	"github.com/kr/pretty"
)

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	x, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return x
}

func TestCanonicalInvariant(t *testing.T) {
	f := func(a int64) bool {
		x := fromInt64(a)
		if x.sign == Zero {
			return len(x.digits) == 0
		}
		return len(x.digits) > 0 && x.digits[len(x.digits)-1] != 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddSubIdentities(t *testing.T) {
	f := func(a, b int64) bool {
		x, y := fromInt64(a), fromInt64(b)
		lhs := x.Add(y).Add(y.Negate())
		if !lhs.Equal(x) {
			t.Logf("(x+y)+(-y) != x: %# v", pretty.Formatter(lhs))
			return false
		}
		if !x.Sub(y).Equal(x.Add(y.Negate())) {
			return false
		}
		if !x.Mul(One()).Equal(x) {
			return false
		}
		if !x.Mul(Zero()).Equal(Zero()) {
			return false
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCommutativity(t *testing.T) {
	f := func(a, b int64) bool {
		x, y := fromInt64(a), fromInt64(b)
		return x.Add(y).Equal(y.Add(x)) && x.Mul(y).Equal(y.Mul(x))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAssociativity(t *testing.T) {
	f := func(a, b, c int64) bool {
		x, y, z := fromInt64(a), fromInt64(b), fromInt64(c)
		if !x.Add(y).Add(z).Equal(x.Add(y.Add(z))) {
			return false
		}
		return x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z)))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestShiftIsMultiplyByPowerOfTwo(t *testing.T) {
	f := func(a int64, k uint8) bool {
		k16 := uint(k % 96)
		x := fromInt64(a)
		shifted := x.Lsh(k16)
		two := FromUint8(2)
		pow := One()
		for i := uint(0); i < k16; i++ {
			pow = pow.Mul(two)
		}
		return shifted.Equal(x.Mul(pow))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSignTotalOrder(t *testing.T) {
	if !(Negative.Cmp(Zero) < 0 && Zero.Cmp(Positive) < 0 && Negative.Cmp(Positive) < 0) {
		t.Fatal("expected Negative < Zero < Positive")
	}
}

func TestAddTriplesFixture(t *testing.T) {
	for _, c := range loadTriples(t, "add_triples.txt") {
		got := mustParse(t, c[0]).Add(mustParse(t, c[1]))
		want := mustParse(t, c[2])
		if !got.Equal(want) {
			t.Errorf("%s + %s = %s, want %s", c[0], c[1], got, c[2])
		}
	}
}

func TestMulPairsFixture(t *testing.T) {
	for _, c := range loadTriples(t, "mul_pairs.txt") {
		got := mustParse(t, c[0]).Mul(mustParse(t, c[1]))
		want := mustParse(t, c[2])
		if !got.Equal(want) {
			t.Errorf("%s * %s = %s, want %s", c[0], c[1], got, c[2])
		}
	}
}

func TestDecimalRoundtripFixture(t *testing.T) {
	for _, line := range loadLines(t, "decimal_roundtrip.txt") {
		x := mustParse(t, line)
		if got := x.String(); got != line {
			t.Errorf("roundtrip %q: got %q", line, got)
		}
	}
}

// fromInt64 builds a small Int from a Go int64, used by property tests
// so they exercise a full range of signs and magnitudes without paying
// for arbitrarily large random operands on every check.
func fromInt64(a int64) Int {
	if a == 0 {
		return Zero()
	}
	neg := a < 0
	u := uint64(a)
	if neg {
		u = -u // two's-complement unsigned negation; safe even for math.MinInt64
	}
	x := FromUint64(u)
	if neg {
		x = x.Negate()
	}
	return x
}
