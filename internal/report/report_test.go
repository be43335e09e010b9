package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoFreeRAM/internal/memory"
)

const gib = 1 << 30

func snap(used, free uint64) *memory.Snapshot {
	return &memory.Snapshot{Total: 16 * gib, Used: used, Free: free}
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		before   *memory.Snapshot
		after    *memory.Snapshot
		expected float64
	}{
		{"used decreased", snap(8*gib, 8*gib), snap(8*gib-512*mib, 8*gib+512*mib), 512},
		{"free increased only", snap(8*gib, 8*gib), snap(8*gib+mib, 8*gib+300*mib), 300},
		{"used decreased wins over free", snap(8*gib, 8*gib), snap(8*gib-10*mib, 8*gib+200*mib), 10},
		{"tiny change floors to one", snap(8*gib, 8*gib), snap(8*gib-16384, 8*gib+16384), 1},
		{"used grew, free shrank", snap(8*gib, 8*gib), snap(8*gib+mib, 8*gib-mib), 1},
		{"no change", snap(8*gib, 8*gib), snap(8*gib, 8*gib), 0},
		{"missing before", nil, snap(8*gib, 8*gib), 0},
		{"missing after", snap(8*gib, 8*gib), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.before, tt.after)
			assert.InDelta(t, tt.expected, got.FreedMB, 1e-9)
		})
	}
}

func TestEstimatePercent(t *testing.T) {
	got := Estimate(snap(8*gib, 8*gib), snap(8*gib-1638*mib, 8*gib+1638*mib))
	assert.InDelta(t, 1638, got.FreedMB, 1e-9)
	assert.InDelta(t, 9.998, got.Percent, 0.001)
}

func TestEstimateZeroTotal(t *testing.T) {
	before := &memory.Snapshot{Used: 10 * mib}
	after := &memory.Snapshot{Used: 5 * mib}

	got := Estimate(before, after)
	assert.InDelta(t, 5, got.FreedMB, 1e-9)
	assert.Zero(t, got.Percent)
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.Start())
	require.NoError(t, p.Done(Outcome{FreedMB: 1637.6, Percent: 9.996}))

	assert.Equal(t, "Cleaning...\nClean completed, freed 1638MB/10.0%\n", buf.String())
}

func TestPrinterNothingFreed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Done(Outcome{}))
	assert.Equal(t, "Clean completed, freed 0MB/0.0%\n", buf.String())
}
