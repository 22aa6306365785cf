package bigint

import (
	"fmt"

	"github.com/agbru/bigmul/internal/digit"
)

// MulDigitInPlace multiplies the little-endian vector z by the single digit y
// in place and returns the carry out of the most significant position.
//
// z is overwritten with the low digits of the product; the full product is
// carry:z. A zero y leaves z all zero and returns 0. The operation cannot fail:
// every step is computed in DoubleDigit width.
func MulDigitInPlace(z []digit.Digit, y digit.Digit) (carry digit.Digit) {
	for i, d := range z {
		carry, z[i] = digit.MulAdd(d, y, carry, 0)
	}
	return carry
}

// MulAccumulate adds lhs*rhs into target positionally: target += lhs * rhs.
//
// target must hold at least len(lhs)+len(rhs) digits; a shorter buffer is a
// programming error and panics before anything is written. The existing
// contents of target are part of the sum, so target must also be wide enough
// for the accumulated value: a carry out of its last digit panics, and the
// rows added before that point are left in target, so it holds a partially
// updated value when the panic is recovered.
//
// Parameters:
//   - target: The accumulator, modified in place.
//   - lhs: The first factor, little-endian, read only.
//   - rhs: The second factor, little-endian, read only.
func MulAccumulate(target, lhs, rhs []digit.Digit) {
	if len(target) < len(lhs)+len(rhs) {
		panic(fmt.Sprintf("bigint: MulAccumulate target has %d digits, need at least %d", len(target), len(lhs)+len(rhs)))
	}
	if len(rhs) == 0 {
		return
	}

	for i, l := range lhs {
		if l == 0 {
			continue
		}
		var carry digit.Digit
		for j, r := range rhs {
			carry, target[i+j] = digit.MulAdd(l, r, target[i+j], carry)
		}
		// The row's final high half lands one past its last column. That slot
		// may already hold a value when target was not zero on entry, so it is
		// added rather than stored.
		if addDigit(target[i+len(rhs):], carry) != 0 {
			panic("bigint: MulAccumulate overflowed target")
		}
	}
}

// addDigit adds d to the vector z, propagating the carry upwards, and returns
// the carry out of the last position.
func addDigit(z []digit.Digit, d digit.Digit) digit.Digit {
	for i := 0; d != 0 && i < len(z); i++ {
		z[i] += d
		if z[i] >= d {
			return 0
		}
		d = 1
	}
	return d
}

// Mul returns lhs * rhs.
//
// The sign of the result is the product of the operand signs. A zero operand
// returns the canonical zero without allocating a product buffer; otherwise the
// product is accumulated into a fresh zero-filled buffer of
// len(lhs)+len(rhs) digits and trimmed.
func Mul(lhs, rhs Int) Int {
	sign := lhs.sign.Mul(rhs.sign)
	if sign == Zero {
		return NewZero()
	}

	z := make([]digit.Digit, len(lhs.digits)+len(rhs.digits))
	MulAccumulate(z, lhs.digits, rhs.digits)
	return Int{sign: sign, digits: trim(z)}
}

// MulDigit returns lhs * rhs where rhs is an unsigned single-digit scalar.
// The sign of the result is the sign of lhs; callers multiplying by a negative
// scalar negate the result themselves.
func MulDigit(lhs Int, rhs digit.Digit) Int {
	if lhs.IsZero() || rhs == 0 {
		return NewZero()
	}

	n := len(lhs.digits)
	z := make([]digit.Digit, n, n+1)
	copy(z, lhs.digits)
	if carry := MulDigitInPlace(z, rhs); carry != 0 {
		z = append(z, carry)
	}
	return Int{sign: lhs.sign, digits: z}
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return Mul(x, y) }

// MulDigit returns x * d.
func (x Int) MulDigit(d digit.Digit) Int { return MulDigit(x, d) }
