package bigint

// Sign is the sign of an Int.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Mul returns the sign of a product of values with signs s and t.
// Zero absorbs; otherwise equal signs give Positive.
func (s Sign) Mul(t Sign) Sign {
	return s * t
}

// Neg returns the opposite sign. Zero is its own opposite.
func (s Sign) Neg() Sign {
	return -s
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case Positive:
		return "Positive"
	default:
		return "Sign(invalid)"
	}
}
