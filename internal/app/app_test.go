package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/bigmul/internal/bigint"
	apperrors "github.com/agbru/bigmul/internal/errors"
	"github.com/agbru/bigmul/internal/logging"
	"github.com/agbru/bigmul/internal/verify/mocks"
)

// runApp builds and runs the application, returning its exit code, stdout and
// stderr.
func runApp(t *testing.T, args []string, opts ...AppOption) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts = append([]AppOption{WithLogger(logging.NewLogger(&stderr, "app-test"))}, opts...)
	application, err := New(append([]string{"bigmul"}, args...), &stderr, opts...)
	if err != nil {
		return apperrors.ExitCodeFor(err), stdout.String(), stderr.String()
	}
	code := application.Run(context.Background(), &stdout)
	return code, stdout.String(), stderr.String()
}

func TestRun_Multiply(t *testing.T) {
	code, out, errOut := runApp(t, []string{"-a", "-123456789012345678901234567890", "-b", "987654321098765432109876543210", "-q"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if want := "-121932631137021795226185032733622923332237463801111263526900\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestRun_Scalar(t *testing.T) {
	code, out, errOut := runApp(t, []string{"-a", "18446744073709551615", "-scalar", "10", "-q"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "184467440737095516150\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRun_VerifyAndMetrics(t *testing.T) {
	code, out, errOut := runApp(t, []string{"-a", "99999999999999999999", "-b", "-99999999999999999999", "-verify", "-metrics"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{
		"Product: -9999999999999999999800000000000000000001",
		"Verification Summary",
		"math/big",
		// -verify runs the kernel a second time alongside the references.
		`bigmul_multiplications_total{kind="value"} 2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_MetricsWithoutVerify(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			"value",
			[]string{"-a", "12", "-b", "13", "-q", "-metrics"},
			[]string{"156\n", `bigmul_multiplications_total{kind="value"} 1`, "bigmul_operand_digits_count 2", `multiplier="schoolbook"`},
		},
		{
			"scalar",
			[]string{"-a", "12", "-scalar", "3", "-q", "-metrics"},
			[]string{"36\n", `bigmul_multiplications_total{kind="scalar"} 1`, "bigmul_operand_digits_count 2", `multiplier="schoolbook/scalar"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runApp(t, tt.args)
			if code != apperrors.ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, errOut)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("stdout should contain %q, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestRun_VerifyMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	liar := mocks.NewMockMultiplier(ctrl)
	liar.EXPECT().Name().Return("liar").AnyTimes()
	liar.EXPECT().Mul(gomock.Any(), gomock.Any(), gomock.Any()).Return(bigint.FromUint64(1), nil)

	code, out, errOut := runApp(t, []string{"-a", "6", "-b", "7", "-verify"}, WithReferences(liar))
	if code != apperrors.ExitErrorMismatch {
		t.Fatalf("exit code = %d, want %d; stderr: %s", code, apperrors.ExitErrorMismatch, errOut)
	}
	if !strings.Contains(out, "MISMATCH") {
		t.Errorf("report should flag the mismatch, got:\n%s", out)
	}
	if !strings.Contains(errOut, "result mismatch") {
		t.Errorf("stderr should explain the mismatch, got: %s", errOut)
	}
}

func TestRun_SelfTest(t *testing.T) {
	code, out, errOut := runApp(t, []string{"-selftest", "20", "-max-digits", "6", "-seed", "3", "-q"})
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut)
	}
	if out != "" {
		t.Errorf("quiet self-test should print nothing, got %q", out)
	}
	if !strings.Contains(errOut, "self-test passed") {
		t.Errorf("self-test should log its success, got: %s", errOut)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"malformed operand", []string{"-a", "12x", "-b", "1"}, apperrors.ExitErrorConfig},
		{"negative scalar", []string{"-a", "12", "-scalar", "-1"}, apperrors.ExitErrorConfig},
		{"missing operand", []string{"-b", "1"}, apperrors.ExitErrorConfig},
		{"unknown flag", []string{"-nope"}, apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runApp(t, tt.args)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tt.code, errOut)
			}
		})
	}
}

func TestParseScalar(t *testing.T) {
	t.Parallel()
	if d, err := parseScalar("65535"); err != nil || d != 65535 {
		t.Errorf("parseScalar(65535) = %d, %v", d, err)
	}
	if _, err := parseScalar("18446744073709551616"); err == nil {
		t.Error("parseScalar accepted a value wider than any digit")
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()
	if !HasVersionFlag([]string{"-a", "1", "--version"}) || HasVersionFlag([]string{"-v"}) {
		t.Error("HasVersionFlag misdetects the version flag")
	}
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "bigmul") || !strings.Contains(buf.String(), "digits: digit") {
		t.Errorf("PrintVersion output = %q", buf.String())
	}
}

func TestRun_ContextErrors(t *testing.T) {
	t.Run("deadline", func(t *testing.T) {
		code, _, errOut := runApp(t, []string{"-selftest", "50", "-timeout", "1ns", "-q", "-v"})
		if code != apperrors.ExitErrorTimeout {
			t.Fatalf("exit code = %d, want %d; stderr: %s", code, apperrors.ExitErrorTimeout, errOut)
		}
		for _, want := range []string{`operation "selftest" timed out`, "run stopped by its context"} {
			if !strings.Contains(errOut, want) {
				t.Errorf("stderr should contain %q, got: %s", want, errOut)
			}
		}
	})

	t.Run("canceled", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		application, err := New([]string{"bigmul", "-selftest", "50", "-q"}, &stderr,
			WithLogger(logging.NewLogger(&stderr, "app-test")))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if code := application.Run(ctx, &stdout); code != apperrors.ExitErrorCanceled {
			t.Errorf("exit code = %d, want %d; stderr: %s", code, apperrors.ExitErrorCanceled, stderr.String())
		}
	})
}
