// Package sched runs the panel's cooperative loop: two independent
// fixed-interval deadlines polled on every pass, no blocking anywhere.
package sched

import (
	"context"
	"time"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Loop dispatches to the data source adapter and the display renderer on
// their own intervals. The timers are independent; when both elapse in the
// same pass the data callback runs first, so that pass's display refresh
// sees the fresh snapshot.
type Loop struct {
	DataInterval    time.Duration
	DisplayInterval time.Duration
	OnData          func(now time.Time)
	OnDisplay       func(now time.Time)

	clock       Clock
	lastData    time.Time
	lastDisplay time.Time
}

// NewLoop creates a loop with the given intervals and callbacks.
func NewLoop(dataEvery, displayEvery time.Duration, onData, onDisplay func(time.Time)) *Loop {
	return &Loop{
		DataInterval:    dataEvery,
		DisplayInterval: displayEvery,
		OnData:          onData,
		OnDisplay:       onDisplay,
		clock:           systemClock{},
	}
}

// Tick performs one pass: fire each callback whose interval has elapsed and
// reset that timer. Both callbacks are bounded synchronous computations.
func (l *Loop) Tick() {
	now := l.clock.Now()

	if now.Sub(l.lastData) >= l.DataInterval {
		l.lastData = now
		if l.OnData != nil {
			l.OnData(now)
		}
	}

	if now.Sub(l.lastDisplay) >= l.DisplayInterval {
		l.lastDisplay = now
		if l.OnDisplay != nil {
			l.OnDisplay(now)
		}
	}
}

// Run polls Tick at the given rate until the context is cancelled.
func (l *Loop) Run(ctx context.Context, pollEvery time.Duration) {
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick()
		}
	}
}
