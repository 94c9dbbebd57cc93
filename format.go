package bigint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file implements decimal and binary rendering, mirroring the
// standard library's big.Int.String/Format contract for the verbs this
// package supports (%d, %b, %s, %v), including sign and alternate (#)
// flag handling.

// String returns x in decimal, matching fmt.Stringer.
func (x Int) String() string {
	return decimalString(x)
}

// Format implements fmt.Formatter, supporting %d, %b, %s, and %v with
// the '+' (explicit sign) and '#' (alternate form, binary "0b" prefix)
// flags.
func (x Int) Format(s fmt.State, verb rune) {
	var str string
	switch verb {
	case 'd', 's', 'v':
		str = decimalString(x)
	case 'b':
		str = binaryString(x, s.Flag('#'))
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, decimalString(x))
		return
	}
	if x.sign == Positive && s.Flag('+') {
		str = "+" + str
	}
	io.WriteString(s, str)
}

// decimalString renders x in decimal by repeated short division by the
// largest power of 10 that fits in one limb, collecting remainders and
// emitting them most-significant first.
func decimalString(x Int) string {
	if x.sign == Zero {
		return "0"
	}
	pad, chunk := chunkSize(10)

	var rems []Digit
	mag := x.digits
	for len(mag) > 0 {
		q, r, _ := shortDivMod(mag, chunk, true)
		rems = append(rems, r)
		mag = q
	}

	var b strings.Builder
	if x.sign == Negative {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(uint64(rems[len(rems)-1]), 10))
	for i := len(rems) - 2; i >= 0; i-- {
		digits := strconv.FormatUint(uint64(rems[i]), 10)
		b.WriteString(strings.Repeat("0", pad-len(digits)))
		b.WriteString(digits)
	}
	return b.String()
}

// binaryString renders x in binary: the high limb unpadded, each lower
// limb zero-padded to the full limb width.
func binaryString(x Int, alt bool) string {
	if x.sign == Zero {
		return "0"
	}
	var b strings.Builder
	if x.sign == Negative {
		b.WriteByte('-')
	}
	if alt {
		b.WriteString("0b")
	}
	n := len(x.digits)
	b.WriteString(strconv.FormatUint(uint64(x.digits[n-1]), 2))
	for i := n - 2; i >= 0; i-- {
		bits := strconv.FormatUint(uint64(x.digits[i]), 2)
		b.WriteString(strings.Repeat("0", DigitBits-len(bits)))
		b.WriteString(bits)
	}
	return b.String()
}
