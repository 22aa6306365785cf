//go:build unix

package sysmon

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func peakRSSKiB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// Darwin reports bytes, the other unixes kilobytes.
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return int64(ru.Maxrss) / 1024
	}
	return int64(ru.Maxrss)
}
