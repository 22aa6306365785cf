package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not in PATH")
	}

	binName := "bigmul"
	if runtime.GOOS == "windows" {
		binName = "bigmul.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	build := exec.Command("go", "build", "-o", binPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build bigmul: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{"Basic Product", []string{"-a", "123456789", "-b", "987654321"}, "Product: 121932631112635269", 0},
		{"Quiet Mode", []string{"-a", "-12", "-b", "12", "-q"}, "-144", 0},
		{"Scalar", []string{"-a", "4294967295", "-scalar", "2", "-q"}, "8589934590", 0},
		{"Zero Operand", []string{"-a", "0", "-b", "-77", "-q"}, "0", 0},
		{"Verify", []string{"-a", "340282366920938463463374607431768211455", "-b", "2", "-verify"}, "Verification Summary", 0},
		{"Self Test", []string{"-selftest", "25", "-seed", "11"}, "Self-test passed: 25 rounds", 0},
		{"Help", []string{"--help"}, "usage", 0},
		{"Version Flag", []string{"--version"}, "bigmul", 0},
		{"Malformed Operand", []string{"-a", "1e9", "-b", "2"}, "validation error", 4},
		{"Missing Operand", []string{"-b", "2"}, "-a is required", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
