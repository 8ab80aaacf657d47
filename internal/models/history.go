package models

import "time"

// HistoryWindow is the agent's recent-snapshot view returned by the history API.
type HistoryWindow struct {
	Snapshots []Snapshot `json:"snapshots"`
	From      time.Time  `json:"from"`
	To        time.Time  `json:"to"`
}
