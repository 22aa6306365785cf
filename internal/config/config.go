// Package config parses the bigmul command line into an AppConfig.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/bigmul/internal/errors"
)

// EnvPrefix is prepended to every environment variable name read by this package.
const EnvPrefix = "BIGMUL_"

const (
	// DefaultTimeout bounds a whole run, including a self-test.
	DefaultTimeout = 5 * time.Minute
	// DefaultMaxDigits is the largest operand length, in digits, generated by
	// the self-test.
	DefaultMaxDigits = 64
	// MaxSelfTestDigits caps -max-digits to keep a round quadratic cost sane.
	MaxSelfTestDigits = 1 << 16
)

// AppConfig holds the parsed command-line configuration.
type AppConfig struct {
	// A and B are the decimal operands.
	A, B string
	// Scalar, when non-empty, replaces B with a single-digit scalar.
	Scalar string
	// Verify cross-checks the product against the reference multipliers.
	Verify bool
	// SelfTest is the number of random verification rounds to run (0 disables).
	SelfTest int
	// MaxDigits bounds the operand length generated by the self-test.
	MaxDigits int
	// Seed seeds the self-test generator; 0 picks a time-based seed.
	Seed int64
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints only the product.
	Quiet bool
	// Verbose prints the full product without truncation, and debug logs.
	Verbose bool
	// Metrics dumps the Prometheus metrics to the output on exit.
	Metrics bool
}

// ParseConfig parses args (without the program name) and applies BIGMUL_*
// environment overrides for flags that were not set explicitly.
//
// Parameters:
//   - programName: The name shown in usage messages.
//   - args: The command-line arguments.
//   - errWriter: Destination for usage and flag errors.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp, a flag parsing error, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.A, "a", "", "First decimal operand.")
	fs.StringVar(&cfg.B, "b", "", "Second decimal operand.")
	fs.StringVar(&cfg.Scalar, "scalar", "", "Multiply -a by this single-digit unsigned scalar instead of -b.")
	fs.BoolVar(&cfg.Verify, "verify", false, "Cross-check the product against the reference multipliers.")
	fs.IntVar(&cfg.SelfTest, "selftest", 0, "Run N random verification rounds.")
	fs.IntVar(&cfg.MaxDigits, "max-digits", DefaultMaxDigits, "Largest operand length, in digits, used by -selftest.")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Seed for -selftest (0 = time based).")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the product.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Print the full product and debug logs.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Shorthand for -v.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Dump Prometheus metrics on exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cross-flag constraints.
func (c AppConfig) Validate() error {
	switch {
	case c.SelfTest < 0:
		return apperrors.NewConfigError("-selftest must be non-negative, got %d", c.SelfTest)
	case c.MaxDigits < 1 || c.MaxDigits > MaxSelfTestDigits:
		return apperrors.NewConfigError("-max-digits must be in [1, %d], got %d", MaxSelfTestDigits, c.MaxDigits)
	case c.Timeout <= 0:
		return apperrors.NewConfigError("-timeout must be positive, got %s", c.Timeout)
	case c.SelfTest == 0 && c.A == "":
		return apperrors.NewConfigError("-a is required unless -selftest is set")
	case c.SelfTest == 0 && c.B == "" && c.Scalar == "":
		return apperrors.NewConfigError("one of -b or -scalar is required")
	case c.B != "" && c.Scalar != "":
		return apperrors.NewConfigError("-b and -scalar are mutually exclusive")
	}
	return nil
}
