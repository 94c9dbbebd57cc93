package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftThreshold is the limb count of the shorter operand above which mul3
// bridges to bigfft's Schönhage–Strassen multiplier instead of Karatsuba.
// This package's own Karatsuba implementation is not tuned for operands
// anywhere near this size; bigfft overtakes it long before a plain
// from-scratch FFT implementation would be worth carrying here.
const fftThreshold = 1 << 13

// fftMul3 computes target += a*b by converting both magnitudes through
// math/big.Int (as a byte-slice bridge only, never as an arithmetic
// backend in its own right) and multiplying with bigfft.Mul. It falls
// back to kMul3 for degenerate shapes bigfft cannot usefully accelerate.
func fftMul3(target, a, b []Digit) {
	if len(a) == 0 || len(b) == 0 {
		kMul3(target, a, b)
		return
	}

	x := new(big.Int).SetBytes(digitsToBytes(a))
	y := new(big.Int).SetBytes(digitsToBytes(b))
	p := bigfft.Mul(x, y)

	addAt(target, bytesToDigits(p.Bytes(), len(a)+len(b)), 0)
}

// digitsToBytes renders a little-endian Digit slice as the big-endian
// byte slice math/big.Int.SetBytes expects.
func digitsToBytes(d []Digit) []byte {
	limbSize := DigitBits / 8
	out := make([]byte, len(d)*limbSize)
	for i, limb := range d {
		start := len(out) - (i+1)*limbSize
		for b := 0; b < limbSize; b++ {
			shift := uint(8 * (limbSize - 1 - b))
			out[start+b] = byte(limb >> shift)
		}
	}
	return trimLeadingZeroBytes(out)
}

func trimLeadingZeroBytes(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// bytesToDigits parses a big-endian byte slice (as produced by
// math/big.Int.Bytes) into a little-endian Digit slice at least n limbs
// long.
func bytesToDigits(b []byte, n int) []Digit {
	limbSize := DigitBits / 8
	numLimbs := (len(b) + limbSize - 1) / limbSize
	if numLimbs < n {
		numLimbs = n
	}
	out := make([]Digit, numLimbs)
	for i := 0; i < len(b); i++ {
		limbIdx := i / limbSize
		shift := uint(i%limbSize) * 8
		// b is big-endian; walk it from the least-significant byte.
		pos := len(b) - 1 - i
		out[limbIdx] |= Digit(b[pos]) << shift
	}
	return out
}
