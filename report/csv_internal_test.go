package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/periodic"
)

// With the clock pinned, the whole table is reproducible byte for byte.
func TestWriteCSVFixedClock(t *testing.T) {
	restore := now
	now = func() time.Time {
		return time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	}
	defer func() { now = restore }()

	fs := &packing.FiberSet{
		Domain: periodic.Domain{W: 1, H: 1, D: 0.01},
		Radius: 0.05,
		Fibers: []packing.Fiber{
			{ID: 1, Center: periodic.Point{X: 0.25, Y: 0.5}},
		},
	}

	var first, second bytes.Buffer
	require.NoError(t, WriteCSV(&first, fs, 0.30))
	require.NoError(t, WriteCSV(&second, fs, 0.30))

	assert.Contains(t, first.String(), "# Generated: 2025-03-14 09:26:53\n")
	assert.Equal(t, first.String(), second.String())
}
