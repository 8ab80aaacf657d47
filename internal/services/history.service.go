package services

import (
	"sync"
	"time"

	"hwpanel/internal/models"
)

// HistoryRecorder keeps a bounded ring of recent snapshots for the agent's
// history endpoint.
type HistoryRecorder struct {
	mu            sync.RWMutex
	snapshots     []models.Snapshot
	maxDataPoints int
}

var historyRecorder = &HistoryRecorder{
	maxDataPoints: 300, // 5 minutes at 1 Hz
}

// RecordSnapshot appends a snapshot, evicting the oldest past capacity.
func RecordSnapshot(s models.Snapshot) {
	historyRecorder.mu.Lock()
	defer historyRecorder.mu.Unlock()

	historyRecorder.snapshots = append(historyRecorder.snapshots, s)
	if len(historyRecorder.snapshots) > historyRecorder.maxDataPoints {
		historyRecorder.snapshots = historyRecorder.snapshots[1:]
	}
}

// GetHistory returns the snapshots recorded within the given window.
func GetHistory(window time.Duration) models.HistoryWindow {
	historyRecorder.mu.RLock()
	defer historyRecorder.mu.RUnlock()

	now := time.Now()
	cutoff := now.Add(-window)

	out := models.HistoryWindow{From: cutoff, To: now}
	for _, s := range historyRecorder.snapshots {
		if s.UpdatedAt.After(cutoff) {
			out.Snapshots = append(out.Snapshots, s)
		}
	}
	return out
}

// ResetHistory clears the ring.
func ResetHistory() {
	historyRecorder.mu.Lock()
	defer historyRecorder.mu.Unlock()
	historyRecorder.snapshots = nil
}
