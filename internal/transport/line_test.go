package transport

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwpanel/internal/feed"
	"hwpanel/internal/models"
)

func TestFormatLine(t *testing.T) {
	snap := models.Snapshot{CPUTemp: 45, GPUTemp: 55, CPUUsage: 25, RAMUsage: 60, GPUUsage: 35, FPS: 120}
	assert.Equal(t, "45,55,25,60,35,120\n", FormatLine(snap))
}

func TestLineReaderSplitsRecords(t *testing.T) {
	lr := NewLineReader(strings.NewReader("45,55,25,60,35,120\n50,60,30,65,40,99\n"))

	first, err := lr.Next()
	require.NoError(t, err)
	assert.Equal(t, "45,55,25,60,35,120", first)

	second, err := lr.Next()
	require.NoError(t, err)
	assert.Equal(t, "50,60,30,65,40,99", second)

	_, err = lr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWireRoundTrip(t *testing.T) {
	// What the agent writes, the panel's adapter must read back unchanged.
	out := models.Snapshot{CPUTemp: 62, GPUTemp: 71, CPUUsage: 88, RAMUsage: 47, GPUUsage: 93, FPS: 33}

	lr := NewLineReader(strings.NewReader(FormatLine(out)))
	line, err := lr.Next()
	require.NoError(t, err)

	now := time.Now()
	in, err := feed.ParseLine(line, now)
	require.NoError(t, err)

	out.UpdatedAt = now
	assert.Equal(t, out, in)
}
