//go:build gmp

package verify

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/bigmul/internal/bigint"
)

func init() {
	extraReferences = append(extraReferences, GMP{})
}

// GMP multiplies with the GNU Multiple Precision library. It is only
// available when built with the gmp tag (cgo and libgmp required).
type GMP struct{}

// Name returns "gmp".
func (GMP) Name() string { return "gmp" }

// Mul converts both operands to gmp integers and multiplies them.
func (GMP) Mul(_ context.Context, a, b bigint.Int) (bigint.Int, error) {
	z := new(gmp.Int).Mul(toGMP(a), toGMP(b))
	return fromGMP(z), nil
}

func toGMP(x bigint.Int) *gmp.Int {
	b := bigint.ToBig(x)
	z := new(gmp.Int).SetBytes(b.Bytes())
	if b.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func fromGMP(z *gmp.Int) bigint.Int {
	x := bigint.FromBig(new(big.Int).SetBytes(z.Bytes()))
	if z.Sign() < 0 {
		return x.Neg()
	}
	return x
}
