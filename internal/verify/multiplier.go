//go:generate mockgen -source=multiplier.go -destination=mocks/mock_multiplier.go -package=mocks

package verify

import (
	"context"
	"math/big"

	"github.com/agbru/bigmul/internal/bigint"
)

// Multiplier computes the product of two integers.
type Multiplier interface {
	// Name identifies the multiplier in reports and metrics.
	Name() string
	// Mul returns a * b.
	Mul(ctx context.Context, a, b bigint.Int) (bigint.Int, error)
}

// ScalarName labels results of the single-digit kernel, bigint.MulDigit.
const ScalarName = "schoolbook/scalar"

// Schoolbook multiplies with the digit-vector kernel.
type Schoolbook struct{}

// Name returns "schoolbook".
func (Schoolbook) Name() string { return "schoolbook" }

// Mul returns bigint.Mul(a, b).
func (Schoolbook) Mul(_ context.Context, a, b bigint.Int) (bigint.Int, error) {
	return bigint.Mul(a, b), nil
}

// MathBig multiplies with the standard library's math/big.
type MathBig struct{}

// Name returns "math/big".
func (MathBig) Name() string { return "math/big" }

// Mul converts both operands to *big.Int and multiplies them.
func (MathBig) Mul(_ context.Context, a, b bigint.Int) (bigint.Int, error) {
	return bigint.FromBig(new(big.Int).Mul(bigint.ToBig(a), bigint.ToBig(b))), nil
}

// extraReferences is filled by optional multipliers compiled in with build tags.
var extraReferences []Multiplier

// DefaultReferences returns the reference multipliers available in this build.
func DefaultReferences() []Multiplier {
	refs := []Multiplier{MathBig{}}
	return append(refs, extraReferences...)
}
