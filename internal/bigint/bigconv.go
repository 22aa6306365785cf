package bigint

import (
	"math/big"

	"github.com/agbru/bigmul/internal/digit"
)

const digitBytes = digit.Bits / 8

// ToBig converts x to a math/big integer.
func ToBig(x Int) *big.Int {
	if x.IsZero() {
		return new(big.Int)
	}
	buf := make([]byte, len(x.digits)*digitBytes)
	for i, d := range x.digits {
		for k := 0; k < digitBytes; k++ {
			buf[len(buf)-1-(i*digitBytes+k)] = byte(d >> (8 * k))
		}
	}
	z := new(big.Int).SetBytes(buf)
	if x.sign == Negative {
		z.Neg(z)
	}
	return z
}

// FromBig converts a math/big integer to an Int.
func FromBig(b *big.Int) Int {
	if b == nil || b.Sign() == 0 {
		return NewZero()
	}
	buf := new(big.Int).Abs(b).Bytes()
	mag := make([]digit.Digit, (len(buf)+digitBytes-1)/digitBytes)
	for i := 0; i < len(buf); i++ {
		mag[i/digitBytes] |= digit.Digit(buf[len(buf)-1-i]) << (8 * (i % digitBytes))
	}
	sign := Positive
	if b.Sign() < 0 {
		sign = Negative
	}
	return Int{sign: sign, digits: trim(mag)}
}
