//go:build !bigmul_wide && (386 || arm || mips || mipsle)

package digit

// Digit is one limb of a base 2^16 positional representation.
type Digit = uint16

// DoubleDigit holds the product of two Digits plus two Digit addends.
type DoubleDigit = uint32

const (
	// Bits is the width of a Digit in bits.
	Bits = 16
	// DecimalChunkSize is the number of decimal characters that always fit in
	// one Digit.
	DecimalChunkSize = 4
	// DecimalChunkBase is 10^DecimalChunkSize.
	DecimalChunkBase Digit = 10_000

	name = "digit16"
)

// Widen converts d to the accumulator width.
func Widen(d Digit) DoubleDigit { return DoubleDigit(d) }

// Split returns the high and low Digit halves of dd.
func Split(dd DoubleDigit) (hi, lo Digit) {
	return Digit(dd >> Bits), Digit(dd)
}

// MulAdd returns x*y + a + c split into its high and low halves.
// The sum never exceeds the DoubleDigit range: (2^W-1)^2 + 2(2^W-1) = 2^2W - 1.
func MulAdd(x, y, a, c Digit) (hi, lo Digit) {
	return Split(Widen(x)*Widen(y) + Widen(a) + Widen(c))
}

// DivRem divides hi:lo by d and returns the quotient and remainder.
// hi must be less than d so the quotient fits in one Digit.
func DivRem(hi, lo, d Digit) (q, r Digit) {
	n := Widen(hi)<<Bits | Widen(lo)
	return Digit(n / Widen(d)), Digit(n % Widen(d))
}
