package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateFPSBands(t *testing.T) {
	tests := []struct {
		gpuUsage int
		want     int
	}{
		{100, 65},
		{95, 55},
		{91, 47},
		{90, 120},
		{71, 82},
		{70, 140},
		{51, 102},
		{50, 144},
		{0, 144},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, EstimateFPS(tc.gpuUsage), "gpu=%d", tc.gpuUsage)
	}
}

func TestEstimateCPUTempTracksLoad(t *testing.T) {
	assert.Equal(t, 35, estimateCPUTemp(0))
	assert.Equal(t, 55, estimateCPUTemp(50))
	assert.Equal(t, 75, estimateCPUTemp(100))
}
