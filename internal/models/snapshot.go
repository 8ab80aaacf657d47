package models

import "time"

// Snapshot is the single record of the six most recent hardware metrics.
// It is always replaced wholesale; no partial-field updates are ever visible.
type Snapshot struct {
	CPUTemp   int       `json:"cpu_temp"`
	GPUTemp   int       `json:"gpu_temp"`
	CPUUsage  int       `json:"cpu_usage"`
	RAMUsage  int       `json:"ram_usage"`
	GPUUsage  int       `json:"gpu_usage"`
	FPS       int       `json:"fps"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSnapshot returns the fixed seed values shown before the first update.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		CPUTemp:  45,
		GPUTemp:  55,
		CPUUsage: 25,
		RAMUsage: 50,
		GPUUsage: 35,
		FPS:      60,
	}
}

// Clamp restricts v to [lo, hi], saturating at the bounds.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns a copy of s with every field forced into its documented
// domain: temperatures and usage percentages to [0,100], FPS to [0,999].
func (s Snapshot) Clamped() Snapshot {
	s.CPUTemp = Clamp(s.CPUTemp, 0, 100)
	s.GPUTemp = Clamp(s.GPUTemp, 0, 100)
	s.CPUUsage = Clamp(s.CPUUsage, 0, 100)
	s.RAMUsage = Clamp(s.RAMUsage, 0, 100)
	s.GPUUsage = Clamp(s.GPUUsage, 0, 100)
	s.FPS = Clamp(s.FPS, 0, 999)
	return s
}
