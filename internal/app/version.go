package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigmul/internal/digit"
)

// Version is set at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version, the Go runtime and the digit configuration.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bigmul %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "digits: %s\n", digit.Describe())
}
