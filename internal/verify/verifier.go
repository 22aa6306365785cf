package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigmul/internal/bigint"
	"github.com/agbru/bigmul/internal/digit"
	apperrors "github.com/agbru/bigmul/internal/errors"
	"github.com/agbru/bigmul/internal/logging"
	"github.com/agbru/bigmul/internal/metrics"
)

const tracerName = "github.com/agbru/bigmul/internal/verify"

// Result is the outcome of one multiplier on one pair of operands.
type Result struct {
	// Name is the multiplier name.
	Name string
	// Product is the computed product. It is only meaningful when Err is nil.
	Product bigint.Int
	// Duration is the time the multiplier took.
	Duration time.Duration
	// Err is the error returned by the multiplier, if any.
	Err error
}

// Report gathers the results of one verification. Results[0] is always the
// candidate.
type Report struct {
	Product bigint.Int
	Results []Result
}

// Verifier runs a candidate multiplier and a set of references on the same
// operands and compares their products.
type Verifier struct {
	candidate  Multiplier
	references []Multiplier
	metrics    *metrics.Metrics
	logger     logging.Logger
	tracer     trace.Tracer
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithReferences replaces the reference multipliers.
func WithReferences(refs ...Multiplier) Option {
	return func(v *Verifier) { v.references = refs }
}

// WithCandidate replaces the multiplier under test.
func WithCandidate(m Multiplier) Option {
	return func(v *Verifier) { v.candidate = m }
}

// WithMetrics records durations, operand sizes and mismatches in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Verifier) { v.metrics = m }
}

// WithLogger sets the logger used for mismatch and failure reports.
func WithLogger(l logging.Logger) Option {
	return func(v *Verifier) { v.logger = l }
}

// NewVerifier returns a Verifier checking the schoolbook kernel against
// DefaultReferences unless options say otherwise.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		candidate:  Schoolbook{},
		references: DefaultReferences(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = logging.NewDefaultLogger()
	}
	return v
}

// Multipliers returns the names of the candidate and every reference.
func (v *Verifier) Multipliers() []string {
	names := []string{v.candidate.Name()}
	for _, r := range v.references {
		names = append(names, r.Name())
	}
	return names
}

// Verify multiplies a by b with every multiplier and checks that all products
// agree with the candidate's.
//
// Parameters:
//   - ctx: The context for cancellation and tracing.
//   - a, b: The operands.
//
// Returns:
//   - Report: The candidate product and every individual result.
//   - error: A MismatchError on disagreement, a CalculationError when a
//     multiplier fails, or the context error.
func (v *Verifier) Verify(ctx context.Context, a, b bigint.Int) (Report, error) {
	v.observe("value", a, b)
	return v.run(ctx, "verify.Mul", v.candidate.Name(), a, b, func(ctx context.Context) (bigint.Int, error) {
		return v.candidate.Mul(ctx, a, b)
	})
}

// VerifyScalar checks bigint.MulDigit(a, d) against the references, which
// multiply a by d promoted to a full integer. The scalar kernel is reported
// as ScalarName whatever the configured candidate.
func (v *Verifier) VerifyScalar(ctx context.Context, a bigint.Int, d digit.Digit) (Report, error) {
	b := bigint.FromUint64(uint64(d))
	v.observe("scalar", a, b)
	return v.run(ctx, "verify.MulDigit", ScalarName, a, b, func(context.Context) (bigint.Int, error) {
		return bigint.MulDigit(a, d), nil
	})
}

func (v *Verifier) observe(kind string, a, b bigint.Int) {
	if v.metrics != nil {
		v.metrics.ObserveMultiplication(kind, a.Len(), b.Len())
	}
}

// multiplierFailure records which multiplier of a run returned an error.
type multiplierFailure struct {
	name      string
	candidate bool
	err       error
}

func (f *multiplierFailure) Error() string { return f.name + ": " + f.err.Error() }

func (f *multiplierFailure) Unwrap() error { return f.err }

func (v *Verifier) run(ctx context.Context, spanName, candidateName string, a, b bigint.Int, candidate func(context.Context) (bigint.Int, error)) (Report, error) {
	ctx, span := v.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.Int("lhs.digits", a.Len()),
		attribute.Int("rhs.digits", b.Len()),
		attribute.String("candidate", candidateName),
	))
	defer span.End()

	report, err := v.execute(ctx, candidateName, a, b, candidate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return report, err
}

// execute runs every multiplier concurrently. The first failure cancels the
// context handed to the others.
func (v *Verifier) execute(ctx context.Context, candidateName string, a, b bigint.Int, candidate func(context.Context) (bigint.Int, error)) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	results := make([]Result, 1+len(v.references))
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results[0] = v.timed(candidateName, func() (bigint.Int, error) { return candidate(gctx) })
		if err := results[0].Err; err != nil {
			return &multiplierFailure{name: candidateName, candidate: true, err: err}
		}
		return nil
	})
	for i, ref := range v.references {
		idx, m := i+1, ref
		g.Go(func() error {
			results[idx] = v.timed(m.Name(), func() (bigint.Int, error) { return m.Mul(gctx, a, b) })
			if err := results[idx].Err; err != nil {
				return &multiplierFailure{name: m.Name(), err: err}
			}
			return nil
		})
	}
	waitErr := g.Wait()

	report := Report{Product: results[0].Product, Results: results}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	var failure *multiplierFailure
	if errors.As(waitErr, &failure) {
		msg := "reference multiplier failed"
		if failure.candidate {
			msg = "candidate multiplier failed"
		}
		v.logger.Error(msg, failure.err, logging.String("multiplier", failure.name))
		return report, apperrors.CalculationError{Cause: failure}
	}

	for _, r := range results[1:] {
		if !r.Product.Equal(report.Product) {
			if v.metrics != nil {
				v.metrics.IncMismatch()
			}
			operands := fmt.Sprintf("%d-digit x %d-digit operands", a.Len(), b.Len())
			v.logger.Error("multipliers disagree", nil,
				logging.String("reference", r.Name),
				logging.String("candidate", results[0].Name),
				logging.String("lhs", a.String()),
				logging.String("rhs", b.String()),
			)
			return report, apperrors.MismatchError{Reference: r.Name, Candidate: results[0].Name, Operands: operands}
		}
	}
	return report, nil
}

func (v *Verifier) timed(name string, f func() (bigint.Int, error)) Result {
	start := time.Now()
	p, err := f()
	d := time.Since(start)
	if v.metrics != nil {
		v.metrics.ObserveDuration(name, d)
	}
	return Result{Name: name, Product: p, Duration: d, Err: err}
}
