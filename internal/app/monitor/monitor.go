package monitor

//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats is the resource usage of a process
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// String formats the stats for the console footer
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% MEM %.1fMB", s.CPU, s.MEM)
}

// Monitor samples process resource usage
type Monitor interface {
	Self(ctx context.Context) (Stats, error)
	GetStats(ctx context.Context, pid int) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor bound to the console's own process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

// Self returns the console's own usage
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return m.GetStats(ctx, m.pid)
}

func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}
