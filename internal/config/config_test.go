package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/bigmul/internal/errors"
)

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := ParseConfig("bigmul", []string{"-a", "12", "-b", "-34", "-verify", "-timeout", "3s", "-q"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.A != "12" || cfg.B != "-34" {
		t.Errorf("operands = %q, %q", cfg.A, cfg.B)
	}
	if !cfg.Verify || !cfg.Quiet {
		t.Errorf("Verify = %v, Quiet = %v, want both true", cfg.Verify, cfg.Quiet)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Timeout)
	}
	if cfg.MaxDigits != DefaultMaxDigits {
		t.Errorf("MaxDigits = %d, want default %d", cfg.MaxDigits, DefaultMaxDigits)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BIGMUL_SELFTEST", "25")
	t.Setenv("BIGMUL_SEED", "42")
	t.Setenv("BIGMUL_VERBOSE", "yes")
	t.Setenv("BIGMUL_MAX_DIGITS", "not-a-number")
	t.Setenv("BIGMUL_TIMEOUT", "1m")

	cfg, err := ParseConfig("bigmul", []string{"-timeout", "10s"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.SelfTest != 25 || cfg.Seed != 42 || !cfg.Verbose {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.MaxDigits != DefaultMaxDigits {
		t.Errorf("invalid env value should keep default, got %d", cfg.MaxDigits)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("explicit flag should win over env, got %s", cfg.Timeout)
	}
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing a", []string{"-b", "1"}},
		{"missing b and scalar", []string{"-a", "1"}},
		{"b and scalar", []string{"-a", "1", "-b", "2", "-scalar", "3"}},
		{"negative selftest", []string{"-selftest", "-1"}},
		{"max digits too small", []string{"-selftest", "1", "-max-digits", "0"}},
		{"zero timeout", []string{"-a", "1", "-b", "2", "-timeout", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("bigmul", tt.args, io.Discard)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := ParseConfig("bigmul", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
