//go:build bigmul_wide

package digit

import "math/bits"

// Digit is one limb of a base 2^64 positional representation.
type Digit = uint64

// DoubleDigit is a 128-bit accumulator. Go has no native 128-bit integer, so
// the value is kept as two words and combined with math/bits.
type DoubleDigit struct {
	Hi, Lo Digit
}

const (
	// Bits is the width of a Digit in bits.
	Bits = 64
	// DecimalChunkSize is the number of decimal characters that always fit in
	// one Digit.
	DecimalChunkSize = 16
	// DecimalChunkBase is 10^DecimalChunkSize.
	DecimalChunkBase Digit = 10_000_000_000_000_000

	name = "digit64"
)

// Widen converts d to the accumulator width.
func Widen(d Digit) DoubleDigit { return DoubleDigit{Lo: d} }

// Split returns the high and low Digit halves of dd.
func Split(dd DoubleDigit) (hi, lo Digit) {
	return dd.Hi, dd.Lo
}

// MulAdd returns x*y + a + c split into its high and low halves.
// The sum never exceeds the DoubleDigit range: (2^W-1)^2 + 2(2^W-1) = 2^2W - 1,
// so the carries folded into hi cannot overflow it.
func MulAdd(x, y, a, c Digit) (hi, lo Digit) {
	hi, lo = bits.Mul64(x, y)
	var carry Digit
	lo, carry = bits.Add64(lo, a, 0)
	hi += carry
	lo, carry = bits.Add64(lo, c, 0)
	hi += carry
	return hi, lo
}

// DivRem divides hi:lo by d and returns the quotient and remainder.
// hi must be less than d so the quotient fits in one Digit.
func DivRem(hi, lo, d Digit) (q, r Digit) {
	return bits.Div64(hi, lo, d)
}
