package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bigmul/internal/bigint"
	"github.com/agbru/bigmul/internal/cli"
	"github.com/agbru/bigmul/internal/digit"
	apperrors "github.com/agbru/bigmul/internal/errors"
	"github.com/agbru/bigmul/internal/logging"
	"github.com/agbru/bigmul/internal/verify"
)

// runMultiply multiplies -a by -b (or by -scalar), prints the product and
// optionally verifies it.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) (err error) {
	ctx, span := a.tracer.Start(ctx, "app.Multiply")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	lhs, err := parseOperand("a", a.Config.A)
	if err != nil {
		return err
	}

	var (
		product bigint.Int
		rhs     bigint.Int
		scalar  digit.Digit
		kind    string
		rhsLen  = 1
	)
	start := time.Now()
	if a.Config.Scalar != "" {
		if scalar, err = parseScalar(a.Config.Scalar); err != nil {
			return err
		}
		kind = "scalar"
		product = bigint.MulDigit(lhs, scalar)
	} else {
		if rhs, err = parseOperand("b", a.Config.B); err != nil {
			return err
		}
		kind = "value"
		rhsLen = rhs.Len()
		product = bigint.Mul(lhs, rhs)
	}
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.String("kind", kind),
		attribute.Int("lhs.digits", lhs.Len()),
		attribute.Int("product.digits", product.Len()),
	)
	a.Metrics.ObserveMultiplication(kind, lhs.Len(), rhsLen)
	a.Metrics.ObserveDuration(productMultiplier(kind), elapsed)
	a.Logger.Debug("product computed",
		logging.String("kind", kind),
		logging.Int("lhs_digits", lhs.Len()),
		logging.Int("product_digits", product.Len()),
		logging.Duration("elapsed", elapsed),
		logging.String("digits", digit.Describe().String()),
	)

	cli.DisplayProduct(out, product, elapsed, cli.OutputConfig{Quiet: a.Config.Quiet, Verbose: a.Config.Verbose})

	if !a.Config.Verify {
		return nil
	}
	return a.verifyProduct(ctx, out, span, lhs, rhs, scalar, kind)
}

func (a *Application) verifyProduct(ctx context.Context, out io.Writer, span trace.Span, lhs, rhs bigint.Int, scalar digit.Digit, kind string) error {
	v := a.newVerifier()
	var (
		report verify.Report
		err    error
	)
	if kind == "scalar" {
		report, err = v.VerifyScalar(ctx, lhs, scalar)
	} else {
		report, err = v.Verify(ctx, lhs, rhs)
	}
	span.SetAttributes(attribute.Bool("verified", err == nil))
	if !a.Config.Quiet && len(report.Results) > 0 {
		cli.DisplayReport(out, report)
	}
	return err
}

// productMultiplier names the kernel that computed a product of the given kind.
func productMultiplier(kind string) string {
	if kind == "scalar" {
		return verify.ScalarName
	}
	return verify.Schoolbook{}.Name()
}

func parseOperand(field, s string) (bigint.Int, error) {
	x, err := bigint.Parse(s)
	if err != nil {
		return bigint.Int{}, apperrors.WrapError(err, "operand -%s", field)
	}
	return x, nil
}

// parseScalar accepts an unsigned decimal that fits in one Digit.
func parseScalar(s string) (digit.Digit, error) {
	v, err := strconv.ParseUint(s, 10, digit.Bits)
	if err != nil {
		return 0, apperrors.ValidationError{
			Field:   "scalar",
			Message: fmt.Sprintf("%q is not an unsigned %d-bit digit", s, digit.Bits),
		}
	}
	return digit.Digit(v), nil
}
