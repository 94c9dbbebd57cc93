package bigint

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"
)

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"0x", ErrEmptyInput},
		{"12a4", ErrInvalidCharacters},
		{"+", ErrEmptyInput},
	}
	for _, c := range cases {
		_, err := FromString(c.in)
		if !errors.Is(err, c.want) {
			t.Errorf("FromString(%q): got %v, want %v", c.in, err, c.want)
		}
	}
}

func TestFromStringRadixMismatch(t *testing.T) {
	_, err := FromStringRadix("0xff", 10)
	if !errors.Is(err, ErrInvalidRadix) {
		t.Errorf("expected ErrInvalidRadix, got %v", err)
	}
}

func TestParseRadixPrefixes(t *testing.T) {
	cases := []struct {
		in   string
		want string // expected decimal rendering
	}{
		{"0x1A", "26"},
		{"0o17", "15"},
		{"0b1010", "10"},
		{"-0x10", "-16"},
	}
	for _, c := range cases {
		x := mustParse(t, c.in)
		if got := x.String(); got != c.want {
			t.Errorf("FromString(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestDecimalRoundTripProperty(t *testing.T) {
	f := func(a int64) bool {
		x := fromInt64(a)
		y := mustParse(t, x.String())
		return x.Equal(y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFormatVerbs(t *testing.T) {
	x := mustParse(t, "42")
	neg := mustParse(t, "-42")

	cases := []struct {
		format string
		arg    Int
		want   string
	}{
		{"%d", x, "42"},
		{"%+d", x, "+42"},
		{"%+d", neg, "-42"},
		{"%b", x, "101010"},
		{"%#b", x, "0b101010"},
		{"%v", x, "42"},
		{"%s", x, "42"},
	}
	for _, c := range cases {
		got := fmt.Sprintf(c.format, c.arg)
		if got != c.want {
			t.Errorf("Sprintf(%q, %s) = %q, want %q", c.format, c.arg, got, c.want)
		}
	}
}

func TestZeroFormatsAsBareZero(t *testing.T) {
	z := Zero()
	if got := fmt.Sprintf("%+d", z); got != "0" {
		t.Errorf("Zero with sign-plus flag: got %q, want %q", got, "0")
	}
}
