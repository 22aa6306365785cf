package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/bigmul/internal/cli"
	"github.com/agbru/bigmul/internal/digit"
	"github.com/agbru/bigmul/internal/logging"
	"github.com/agbru/bigmul/internal/sysmon"
)

// runSelfTest runs -selftest random verification rounds with a progress
// spinner.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) error {
	seed := uint64(a.Config.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, span := a.tracer.Start(ctx, "app.SelfTest")
	defer span.End()
	span.SetAttributes(
		attribute.Int("rounds", a.Config.SelfTest),
		attribute.Int("max_digits", a.Config.MaxDigits),
		attribute.Int64("seed", int64(seed)),
	)

	v := a.newVerifier()
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Self-test: %d rounds, up to %d digits, seed %d\n", a.Config.SelfTest, a.Config.MaxDigits, seed)
		fmt.Fprintf(out, "Digit configuration: %s\n", digit.Describe())
		fmt.Fprintf(out, "Multipliers: %v\n", v.Multipliers())
	}

	var progress func(done, total int)
	if !a.Config.Quiet {
		display := cli.NewSelfTestProgress(out)
		display.Start()
		defer display.Stop()
		progress = display.Update
	}

	start := time.Now()
	summary, err := v.SelfTest(ctx, a.Config.SelfTest, a.Config.MaxDigits, seed, progress)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Logger.Error("self-test failed", err,
			logging.Int("passed_rounds", summary.Rounds),
			logging.Uint64("seed", seed),
		)
		return err
	}

	stats := sysmon.Sample()
	fields := append([]logging.Field{
		logging.Int("rounds", summary.Rounds),
		logging.Duration("elapsed", elapsed),
	}, stats.Fields()...)
	a.Logger.Info("self-test passed", fields...)
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\nSelf-test passed: %d rounds in %s\n", summary.Rounds, cli.FormatExecutionDuration(elapsed))
		if a.Config.Verbose {
			fmt.Fprintf(out, "Resources: %s\n", stats)
		}
	}
	return nil
}
