package bigint

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/cjm00/bigint/internal/rchunks"
)

// This file implements string parsing. The sign is recognized with a
// small io.ByteScanner-based scanner in the idiom of the standard
// library's own big.Int.scan/scanSign; no parser-combinator library
// appears anywhere in the example corpus surveyed for this module, so
// the rest of the grammar (radix prefix, digit validation) is
// hand-written as well.

// FromString parses s as a signed integer. A "0x", "0o", or "0b" prefix
// selects hexadecimal, octal, or binary; otherwise the digits are
// decimal. Hex digits are accepted case-insensitively.
func FromString(s string) (Int, error) {
	return parse(s, 0)
}

// FromStringRadix parses s as a signed integer in the given radix,
// which must be one of 2, 8, 10, or 16. If s also carries an explicit
// radix prefix, it must agree with radix.
func FromStringRadix(s string, radix int) (Int, error) {
	switch radix {
	case 2, 8, 10, 16:
	default:
		return Int{}, errors.Wrapf(ErrInvalidRadix, "radix %d", radix)
	}
	return parse(s, radix)
}

func parse(s string, radix int) (Int, error) {
	if s == "" {
		return Int{}, errors.WithStack(ErrEmptyInput)
	}

	r := strings.NewReader(s)
	neg, err := scanSign(r)
	if err != nil {
		return Int{}, errors.Wrap(ErrUnknown, err.Error())
	}
	rest := s[len(s)-r.Len():]
	if rest == "" {
		return Int{}, errors.WithStack(ErrEmptyInput)
	}

	detected, prefixed := detectRadixPrefix(rest)
	switch {
	case radix == 0:
		radix = detected
	case prefixed && detected != radix:
		return Int{}, errors.Wrapf(ErrInvalidRadix,
			"prefix implies radix %d, requested %d", detected, radix)
	}
	if prefixed {
		rest = rest[2:]
	}
	if rest == "" {
		return Int{}, errors.WithStack(ErrEmptyInput)
	}
	if !validDigits(rest, radix) {
		return Int{}, errors.WithStack(ErrInvalidCharacters)
	}

	sign := Positive
	if neg {
		sign = Negative
	}
	return fromDigits(sign, assemble(rest, radix)), nil
}

// scanSign mirrors the standard library's big.Int.scanSign: it consumes
// a leading '+' or '-', pushing back anything else.
func scanSign(r io.ByteScanner) (neg bool, err error) {
	ch, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch ch {
	case '-':
		return true, nil
	case '+':
		return false, nil
	default:
		return false, r.UnreadByte()
	}
}

// detectRadixPrefix reports the radix implied by a leading "0x"/"0o"/
// "0b" (case-insensitive) prefix, and whether one was found. Absent a
// prefix, the implied radix is 10 (decimal).
func detectRadixPrefix(s string) (radix int, ok bool) {
	if len(s) < 2 || s[0] != '0' {
		return 10, false
	}
	switch s[1] {
	case 'x', 'X':
		return 16, true
	case 'o', 'O':
		return 8, true
	case 'b', 'B':
		return 2, true
	default:
		return 10, false
	}
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func validDigits(s string, radix int) bool {
	for i := 0; i < len(s); i++ {
		v := digitValue(s[i])
		if v < 0 || v >= radix {
			return false
		}
	}
	return true
}

// chunkSize returns the largest n such that radix^n fits in a single
// Digit without overflow, along with that value (radix^n) itself.
// Computed by repeated multiplication rather than a hard-coded table so
// it stays correct across all three digit-width build configurations.
func chunkSize(radix int) (n int, chunkValue Digit) {
	chunkValue = 1
	r := Digit(radix)
	for {
		lo, hi := mulWW(chunkValue, r)
		if hi != 0 {
			return n, chunkValue
		}
		chunkValue = lo
		n++
	}
}

// assemble parses a validated digit string (no sign, no prefix) into a
// magnitude, right-chunking it into limb-sized pieces and reducing
// high-to-low by Horner's method.
func assemble(digits string, radix int) []Digit {
	size, chunkValue := chunkSize(radix)

	var pieces [][]byte
	it := rchunks.New([]byte(digits), size)
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		pieces = append(pieces, c)
	}

	acc := Zero()
	for i := len(pieces) - 1; i >= 0; i-- {
		acc = acc.MulDigit(chunkValue).AddDigit(parseLimb(pieces[i], radix))
	}
	return acc.digits
}

func parseLimb(piece []byte, radix int) Digit {
	var v Digit
	r := Digit(radix)
	for _, c := range piece {
		v = v*r + Digit(digitValue(c))
	}
	return v
}
