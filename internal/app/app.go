package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bigmul/internal/config"
	apperrors "github.com/agbru/bigmul/internal/errors"
	"github.com/agbru/bigmul/internal/logging"
	"github.com/agbru/bigmul/internal/metrics"
	"github.com/agbru/bigmul/internal/verify"
)

// Application represents the bigmul application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Metrics

	references []verify.Multiplier
	tracer     trace.Tracer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithReferences overrides the reference multipliers used by -verify and
// -selftest.
func WithReferences(refs ...verify.Multiplier) AppOption {
	return func(a *Application) { a.references = refs }
}

// WithLogger sets the application logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "bigmul"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "bigmul")
	}
	if app.references == nil {
		app.references = verify.DefaultReferences()
	}
	app.Metrics = metrics.NewMetrics()
	app.tracer = otel.Tracer("github.com/agbru/bigmul/internal/app")
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	if a.Config.SelfTest > 0 {
		err = a.runSelfTest(ctx, out)
	} else {
		err = a.runMultiply(ctx, out)
	}

	if a.Config.Metrics {
		if werr := a.Metrics.WriteText(out); werr != nil {
			a.Logger.Error("failed to write metrics", werr)
		}
	}

	if err != nil {
		if apperrors.IsContextError(err) {
			a.Logger.Debug("run stopped by its context", logging.String("mode", a.mode()), logging.Err(err))
			if errors.Is(err, context.DeadlineExceeded) {
				err = apperrors.TimeoutError{Operation: a.mode(), Limit: a.Config.Timeout}
			}
		}
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

func (a *Application) mode() string {
	if a.Config.SelfTest > 0 {
		return "selftest"
	}
	return "multiply"
}

func (a *Application) newVerifier() *verify.Verifier {
	return verify.NewVerifier(
		verify.WithReferences(a.references...),
		verify.WithMetrics(a.Metrics),
		verify.WithLogger(a.Logger),
	)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps an error returned by New to a process exit code.
func ExitCode(err error) int {
	return apperrors.ExitCodeFor(err)
}
