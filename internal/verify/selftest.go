package verify

import (
	"context"
	"math/rand/v2"

	"github.com/agbru/bigmul/internal/bigint"
	"github.com/agbru/bigmul/internal/digit"
	"github.com/agbru/bigmul/internal/logging"
)

// SelfTestSummary describes a completed or interrupted self-test.
type SelfTestSummary struct {
	// Rounds is the number of rounds that passed.
	Rounds int
	// Seed is the generator seed, so a failing run can be replayed.
	Seed uint64
}

// Generator produces random operands whose digits lean towards the values
// that stress carry propagation (0, 1 and Max).
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Digit returns a random digit.
func (g *Generator) Digit() digit.Digit {
	switch g.rng.IntN(8) {
	case 0:
		return 0
	case 1:
		return 1
	case 2, 3:
		return digit.Max
	default:
		return digit.Digit(g.rng.Uint64())
	}
}

// Int returns a random value of 1 to maxDigits digits. About one value in
// sixteen is zero and half of the non-zero values are negative.
func (g *Generator) Int(maxDigits int) bigint.Int {
	if g.rng.IntN(16) == 0 {
		return bigint.NewZero()
	}
	ds := make([]digit.Digit, 1+g.rng.IntN(maxDigits))
	for i := range ds {
		ds[i] = g.Digit()
	}
	if ds[len(ds)-1] == 0 {
		ds[len(ds)-1] = 1
	}
	sign := bigint.Positive
	if g.rng.IntN(2) == 0 {
		sign = bigint.Negative
	}
	return bigint.New(sign, ds)
}

// SelfTest runs rounds random verifications. Each round checks one full
// product and one scalar product. It stops at the first failure and reports
// how many rounds passed. progress, when non-nil, is called after each round.
func (v *Verifier) SelfTest(ctx context.Context, rounds, maxDigits int, seed uint64, progress func(done, total int)) (SelfTestSummary, error) {
	gen := NewGenerator(seed)
	summary := SelfTestSummary{Seed: seed}

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		a, b := gen.Int(maxDigits), gen.Int(maxDigits)
		if _, err := v.Verify(ctx, a, b); err != nil {
			return summary, err
		}
		if _, err := v.VerifyScalar(ctx, a, gen.Digit()); err != nil {
			return summary, err
		}
		summary.Rounds++
		if progress != nil {
			progress(summary.Rounds, rounds)
		}
	}

	v.logger.Debug("self-test finished",
		logging.Int("rounds", summary.Rounds),
		logging.Uint64("seed", seed),
		logging.Int("max_digits", maxDigits),
	)
	return summary, nil
}
