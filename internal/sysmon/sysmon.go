// Package sysmon samples system-wide and process resource usage for the
// self-test summary.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/bigmul/internal/logging"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 // system-wide, 0.0 .. 100.0
	MemPercent float64 // system-wide, 0.0 .. 100.0
	PeakRSSKiB int64   // this process; 0 where unsupported
}

// Sample collects a resource snapshot. CPU uses interval=0, so the first call
// of a process may report 0. Fields that cannot be read are left at zero.
func Sample() Stats {
	s := Stats{PeakRSSKiB: peakRSSKiB()}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Fields returns s as structured log fields.
func (s Stats) Fields() []logging.Field {
	return []logging.Field{
		logging.Float64("cpu_percent", s.CPUPercent),
		logging.Float64("mem_percent", s.MemPercent),
		logging.Int("peak_rss_kib", int(s.PeakRSSKiB)),
	}
}

func (s Stats) String() string {
	if s.PeakRSSKiB == 0 {
		return fmt.Sprintf("cpu %.1f%%, mem %.1f%%", s.CPUPercent, s.MemPercent)
	}
	return fmt.Sprintf("cpu %.1f%%, mem %.1f%%, peak rss %d KiB", s.CPUPercent, s.MemPercent, s.PeakRSSKiB)
}
