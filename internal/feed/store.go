package feed

import (
	"sync"

	"hwpanel/internal/models"
)

// Store holds the current snapshot behind a mutex so a background reader
// (serial line consumer) and the renderer never observe a torn update.
// The snapshot is only ever replaced wholesale.
type Store struct {
	mu  sync.RWMutex
	cur models.Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(seed models.Snapshot) *Store {
	return &Store{cur: seed}
}

// Replace swaps in the next snapshot, all six fields together.
func (s *Store) Replace(next models.Snapshot) {
	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()
}

// Current returns the last-known snapshot, however stale.
func (s *Store) Current() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}
