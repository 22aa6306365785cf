// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/bigmul/internal/bigint"
	"github.com/agbru/bigmul/internal/verify"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// Quiet prints only the product.
	Quiet bool
	// Verbose prints the full product without truncation.
	Verbose bool
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatProduct renders x in base 10, eliding the middle of long values
// unless verbose is set.
func FormatProduct(x bigint.Int, verbose bool) string {
	s := x.String()
	if verbose || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d chars)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplayProduct writes the product, with its size unless in quiet mode.
func DisplayProduct(out io.Writer, x bigint.Int, d time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintln(out, x.String())
		return
	}
	fmt.Fprintf(out, "Product: %s\n", FormatProduct(x, cfg.Verbose))
	fmt.Fprintf(out, "Digits: %d, sign: %s, time: %s\n", x.Len(), x.Sign(), FormatExecutionDuration(d))
}

// DisplayReport writes one row per multiplier with its duration and status.
func DisplayReport(out io.Writer, report verify.Report) {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")

	nameWidth := len("Multiplier")
	for _, r := range report.Results {
		nameWidth = max(nameWidth, len(r.Name))
	}
	fmt.Fprintf(out, "%-*s   %-10s   %s\n", nameWidth, "Multiplier", "Duration", "Status")
	for _, r := range report.Results {
		status := "OK"
		switch {
		case r.Err != nil:
			status = fmt.Sprintf("Failure (%v)", r.Err)
		case !r.Product.Equal(report.Product):
			status = "MISMATCH"
		}
		duration := FormatExecutionDuration(r.Duration)
		if r.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%-*s   %-10s   %s\n", nameWidth, r.Name, duration, status)
	}
	fmt.Fprintln(out, strings.Repeat("-", nameWidth+30))
}
