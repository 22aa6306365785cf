//go:build !unix

package sysmon

func peakRSSKiB() int64 { return 0 }
