package services

import (
	"hwpanel/internal/feed"
	"hwpanel/internal/models"
)

// snapshotStore is the agent's single-slot holder for the latest collected
// snapshot, replaced wholesale on every collection tick.
var snapshotStore = feed.NewStore(models.DefaultSnapshot())

// PublishSnapshot installs a freshly collected snapshot and fans it out to
// the history ring and any connected WebSocket clients.
func PublishSnapshot(s models.Snapshot) {
	snapshotStore.Replace(s)
	RecordSnapshot(s)
	if hub := GetWebSocketHub(); hub != nil {
		hub.Publish(s)
	}
}

// CurrentSnapshot returns the last collected snapshot.
func CurrentSnapshot() models.Snapshot {
	return snapshotStore.Current()
}
