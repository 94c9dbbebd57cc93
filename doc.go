// Package bigint implements arbitrary-precision signed integers.
//
// An Int represents an integer of unbounded magnitude as a sign and a
// little-endian slice of fixed-width limbs. The package implements the
// usual arithmetic operators, Knuth's Algorithm D for long division,
// Karatsuba multiplication (with an FFT-backed tier for very large
// operands), bit shifts, and multi-radix parsing and formatting.
//
// The limb width is fixed at build time: 64 bits by default, or 32/16
// bits under the bigint_digit32/bigint_digit16 build tags.
package bigint
