package feed

import (
	"math/rand"
	"time"

	"hwpanel/internal/models"
)

// Simulator produces synthetic snapshots for demo mode: six base values
// perturbed by a bounded random walk each tick, each clamped to its band.
// FPS is not an independent walk; it is derived from the GPU usage computed
// in the same tick.
type Simulator struct {
	rng *rand.Rand

	cpuTemp  float64
	gpuTemp  float64
	cpuUsage float64
	ramUsage float64
	gpuUsage float64
}

// NewSimulator creates a simulator seeded from the given source.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		rng:      rand.New(rand.NewSource(seed)),
		cpuTemp:  45,
		gpuTemp:  55,
		cpuUsage: 25,
		ramUsage: 50,
		gpuUsage: 35,
	}
}

// Tick advances the walk one step and returns the resulting snapshot.
func (s *Simulator) Tick(now time.Time) models.Snapshot {
	s.cpuTemp = clampF(s.cpuTemp+s.uniform(3)*0.5, 35, 80)
	s.gpuTemp = clampF(s.gpuTemp+s.uniform(3)*0.5, 45, 85)
	s.cpuUsage = clampF(s.cpuUsage+s.uniform(10)*0.3, 10, 95)
	s.ramUsage = clampF(s.ramUsage+s.uniform(5)*0.2, 40, 90)
	s.gpuUsage = clampF(s.gpuUsage+s.uniform(15)*0.4, 0, 100)

	return models.Snapshot{
		CPUTemp:   int(s.cpuTemp),
		GPUTemp:   int(s.gpuTemp),
		CPUUsage:  int(s.cpuUsage),
		RAMUsage:  int(s.ramUsage),
		GPUUsage:  int(s.gpuUsage),
		FPS:       s.fpsFor(int(s.gpuUsage)),
		UpdatedAt: now,
	}
}

// fpsFor maps the freshly computed GPU usage to a frame rate band:
// heavy load throttles into the 30s, medium load holds 60+, light load
// runs free above 100.
func (s *Simulator) fpsFor(gpuUsage int) int {
	switch {
	case gpuUsage > 80:
		return 30 + s.rng.Intn(20)
	case gpuUsage > 50:
		return 60 + s.rng.Intn(30)
	default:
		return 100 + s.rng.Intn(44)
	}
}

// uniform returns a value in [-n, n].
func (s *Simulator) uniform(n float64) float64 {
	return (s.rng.Float64()*2 - 1) * n
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
