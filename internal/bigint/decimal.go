package bigint

import (
	"fmt"
	"strings"

	"github.com/agbru/bigmul/internal/digit"
	apperrors "github.com/agbru/bigmul/internal/errors"
)

// pow10 holds 10^k for k in [0, DecimalChunkSize].
var pow10 = func() [digit.DecimalChunkSize + 1]digit.Digit {
	var t [digit.DecimalChunkSize + 1]digit.Digit
	t[0] = 1
	for k := 1; k < len(t); k++ {
		t[k] = t[k-1] * 10
	}
	return t
}()

// Parse converts a base-10 string with an optional leading '+' or '-' into an
// Int. The digits are consumed DecimalChunkSize characters at a time so each
// chunk fits in a single Digit.
//
// Parameters:
//   - s: The decimal representation.
//
// Returns:
//   - Int: The parsed value; "-0" parses as zero.
//   - error: An apperrors.ValidationError when s is not a decimal integer.
func Parse(s string) (Int, error) {
	sign := Positive
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = Negative
		}
		body = body[1:]
	}
	if body == "" {
		return Int{}, apperrors.ValidationError{Field: "value", Message: fmt.Sprintf("%q has no digits", s)}
	}
	for i := 0; i < len(body); i++ {
		if c := body[i]; c < '0' || c > '9' {
			return Int{}, apperrors.ValidationError{Field: "value", Message: fmt.Sprintf("unexpected character %q in %q", c, s)}
		}
	}

	mag := make([]digit.Digit, 1, len(body)/digit.DecimalChunkSize+2)
	head := len(body) % digit.DecimalChunkSize
	if head == 0 {
		head = digit.DecimalChunkSize
	}
	for chunk := body[:head]; ; chunk = body[:digit.DecimalChunkSize] {
		var v digit.Digit
		for i := 0; i < len(chunk); i++ {
			v = v*10 + digit.Digit(chunk[i]-'0')
		}
		if carry := MulDigitInPlace(mag, pow10[len(chunk)]); carry != 0 {
			mag = append(mag, carry)
		}
		if carry := addDigit(mag, v); carry != 0 {
			mag = append(mag, carry)
		}
		body = body[len(chunk):]
		if body == "" {
			break
		}
	}

	mag = trim(mag)
	if isZeroMag(mag) {
		return NewZero(), nil
	}
	return Int{sign: sign, digits: mag}, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants and tests.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns the base-10 representation of x.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}

	// Peel off DecimalChunkBase-sized remainders, least significant first.
	q := append([]digit.Digit(nil), x.digits...)
	var chunks []digit.Digit
	for !isZeroMag(q) {
		chunks = append(chunks, divDigitInPlace(q, digit.DecimalChunkBase))
		q = trim(q)
	}

	var sb strings.Builder
	if x.sign == Negative {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*d", digit.DecimalChunkSize, chunks[i])
	}
	return sb.String()
}

// divDigitInPlace divides z by d in place and returns the remainder.
func divDigitInPlace(z []digit.Digit, d digit.Digit) (r digit.Digit) {
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = digit.DivRem(r, z[i], d)
	}
	return r
}
