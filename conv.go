package bigint

// This file implements conversions from the fixed-width unsigned Go
// integer types into Int.

// FromUint8 returns x as an Int.
func FromUint8(x uint8) Int { return fromUint64(uint64(x)) }

// FromUint16 returns x as an Int.
func FromUint16(x uint16) Int { return fromUint64(uint64(x)) }

// FromUint32 returns x as an Int.
func FromUint32(x uint32) Int { return fromUint64(uint64(x)) }

// FromUint64 returns x as an Int.
func FromUint64(x uint64) Int { return fromUint64(x) }

// fromUint64 builds an Int from a uint64, splitting it into as many limbs
// as needed when Digit is narrower than 64 bits.
func fromUint64(x uint64) Int {
	if x == 0 {
		return Zero()
	}
	if DigitBits >= 64 {
		return Int{sign: Positive, digits: []Digit{Digit(x)}}
	}
	digits := make([]Digit, 0, 64/DigitBits)
	for x != 0 {
		digits = append(digits, Digit(x))
		x >>= DigitBits
	}
	return fromDigits(Positive, digits)
}
