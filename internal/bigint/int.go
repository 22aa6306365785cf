package bigint

import (
	"fmt"

	"github.com/agbru/bigmul/internal/digit"
)

// Int is a signed integer of unbounded magnitude.
//
// The magnitude is stored least-significant digit first and is always trimmed:
// it has no trailing zero digits, except the single digit [0] of the value
// zero. The sign is Zero if and only if the magnitude is zero. The zero value
// of Int is a valid zero.
type Int struct {
	sign   Sign
	digits []digit.Digit
}

// NewZero returns the canonical zero value.
func NewZero() Int {
	return Int{sign: Zero, digits: []digit.Digit{0}}
}

// New returns the Int with the given sign and little-endian magnitude. The
// digits are copied and trimmed. A zero magnitude yields zero whatever the
// sign; a non-zero magnitude with sign Zero is a programming error and panics.
func New(sign Sign, digits []digit.Digit) Int {
	mag := trim(append([]digit.Digit(nil), digits...))
	if isZeroMag(mag) {
		return NewZero()
	}
	switch sign {
	case Positive, Negative:
	case Zero:
		panic("bigint: New called with sign Zero and a non-zero magnitude")
	default:
		panic(fmt.Sprintf("bigint: invalid sign %d", sign))
	}
	return Int{sign: sign, digits: mag}
}

// FromUint64 returns v as an Int.
func FromUint64(v uint64) Int {
	if v == 0 {
		return NewZero()
	}
	shift := uint(digit.Bits)
	var mag []digit.Digit
	for v != 0 {
		mag = append(mag, digit.Digit(v))
		v >>= shift
	}
	return Int{sign: Positive, digits: mag}
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	x := FromUint64(uint64(-(v + 1)) + 1)
	x.sign = Negative
	return x
}

// Sign returns the sign of x.
func (x Int) Sign() Sign { return x.sign }

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.sign == Zero }

// Len returns the number of digits in the magnitude of x (1 for zero).
func (x Int) Len() int {
	if len(x.digits) == 0 {
		return 1
	}
	return len(x.digits)
}

// Digits returns a copy of the little-endian magnitude of x.
func (x Int) Digits() []digit.Digit {
	if len(x.digits) == 0 {
		return []digit.Digit{0}
	}
	return append([]digit.Digit(nil), x.digits...)
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return NewZero()
	}
	return Int{sign: x.sign.Neg(), digits: x.digits}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.sign == Negative {
		return x.Neg()
	}
	return x
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == Zero:
		return 0
	}
	c := cmpMag(x.digits, y.digits)
	if x.sign == Negative {
		return -c
	}
	return c
}

// Equal reports whether x and y hold the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// trim drops trailing zero digits, keeping at least one digit.
func trim(d []digit.Digit) []digit.Digit {
	n := len(d)
	for n > 1 && d[n-1] == 0 {
		n--
	}
	return d[:n]
}

func isZeroMag(d []digit.Digit) bool {
	return len(d) == 0 || (len(d) == 1 && d[0] == 0)
}

// cmpMag compares two trimmed magnitudes.
func cmpMag(x, y []digit.Digit) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
