package monitor

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	m := NewMonitor()

	assert.NotNil(t, m)
}

func Test_GetStats_OutOfRangePID(t *testing.T) {
	m := NewMonitor()
	ctx := context.Background()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "zero PID", pid: 0},
		{name: "negative PID", pid: -1},
		{name: "above int32", pid: 2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(ctx, tt.pid)

			assert.NoError(t, err)
			assert.Equal(t, Stats{}, stats)
		})
	}
}

func Test_GetStats_NonExistentProcess(t *testing.T) {
	_, err := NewMonitor().GetStats(context.Background(), 999999999)

	assert.Error(t, err)
}

func Test_Self(t *testing.T) {
	m := NewMonitor()

	stats, err := m.Self(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.MEM, 0.0)

	other, err := m.GetStats(context.Background(), os.Getpid())
	require.NoError(t, err)
	assert.Greater(t, other.MEM, 0.0)
}

func Test_Stats_String(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected string
	}{
		{name: "Zero", stats: Stats{}, expected: "CPU 0.0% MEM 0.0MB"},
		{name: "Rounded", stats: Stats{CPU: 12.345, MEM: 48.06}, expected: "CPU 12.3% MEM 48.1MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.String())
		})
	}
}
