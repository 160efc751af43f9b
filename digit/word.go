// Package digit provides the fixed-width word and double-word primitives
// that every layer above it (fb, fb4, eb, pb) is built from: addition with
// carry, multiplication into a double-word product, bit-position queries,
// and single-word shifts.
//
// DIGIT = 64 in this build. A narrower build (8/16/32) is a recompilation
// concern, not a runtime switch — see Word32 below.
package digit

import "math/bits"

// Word is the native unsigned machine word this build is compiled for.
type Word = uint64

// Width is DIGIT, the bit width of a Word.
const Width = 64

// Word32 documents the narrower alternate width named in spec.md's digit
// primitives layer. It is not wired into fb/eb/pb — shipping a second,
// fully parallel arithmetic backend was never named as a required
// deliverable, only the Precision-exceeded error path that a build-time
// width mismatch would trigger.
type Word32 = uint32

// Add returns a+b+carryIn and the carry out, both in {0,1}.
func Add(a, b, carryIn Word) (sum, carryOut Word) {
	s, c := bits.Add64(a, b, carryIn)
	return s, c
}

// Sub returns a-b-borrowIn and the borrow out, both in {0,1}.
func Sub(a, b, borrowIn Word) (diff, borrowOut Word) {
	d, b2 := bits.Sub64(a, b, borrowIn)
	return d, b2
}

// MulWide returns the double-word product a*b as (hi, lo).
func MulWide(a, b Word) (hi, lo Word) {
	return bits.Mul64(a, b)
}

// Bits returns the position of the highest set bit of a, plus one. Bits(0)
// is 0.
func Bits(a Word) int {
	return bits.Len64(a)
}

// Lsh1 shifts a left by n<Width bits, returning the shifted-out high bits
// as carryOut (which become the low bits of the next more-significant
// word in a multi-word shift).
func Lsh1(a Word, n uint) (shifted, carryOut Word) {
	if n == 0 {
		return a, 0
	}
	return a << n, a >> (Width - n)
}

// Rsh1 shifts a right by n<Width bits, returning the shifted-out low bits
// as carryOut (which become the high bits of the next less-significant
// word in a multi-word shift), already positioned at bit Width-n.
func Rsh1(a Word, n uint) (shifted, carryOut Word) {
	if n == 0 {
		return a, 0
	}
	return a >> n, a << (Width - n)
}

// TestBit reports whether bit i of a is set.
func TestBit(a Word, i uint) bool {
	return (a>>i)&1 == 1
}
