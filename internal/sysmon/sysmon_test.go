package sysmon

import (
	"runtime"
	"strings"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.PeakRSSKiB < 0 {
		t.Errorf("PeakRSSKiB negative: %d", s.PeakRSSKiB)
	}
}

func TestSample_PeakRSSOnLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("peak RSS is only asserted on linux")
	}
	if s := Sample(); s.PeakRSSKiB == 0 {
		t.Error("expected non-zero peak RSS for a running test binary")
	}
}

func TestStats_FieldsAndString(t *testing.T) {
	s := Stats{CPUPercent: 12.5, MemPercent: 40, PeakRSSKiB: 2048}

	fields := s.Fields()
	if len(fields) != 3 {
		t.Fatalf("Fields() returned %d fields, want 3", len(fields))
	}
	if fields[2].Key != "peak_rss_kib" || fields[2].Value != 2048 {
		t.Errorf("unexpected rss field: %+v", fields[2])
	}

	got := s.String()
	for _, want := range []string{"cpu 12.5%", "mem 40.0%", "peak rss 2048 KiB"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(Stats{}.String(), "rss") {
		t.Error("String() should omit rss when unknown")
	}
}
