package progress

import (
	"context"
	"time"

	"fetcharr/internal/contracts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
)

// Tracker drains status updates into the history store without ever
// blocking the download that produced them.
type Tracker struct {
	updates chan models.StatusUpdate
	done    chan struct{}
	store   contracts.HistoryStore
}

// NewTracker returns a tracker flushing into the given store.
func NewTracker(store contracts.HistoryStore) *Tracker {
	return &Tracker{
		updates: make(chan models.StatusUpdate, 100),
		done:    make(chan struct{}),
		store:   store,
	}
}

// Start starts the tracker's processing loop.
func (t *Tracker) Start(ctx context.Context) {
	go t.processUpdates(ctx)
}

// Stop stops the tracker.
func (t *Tracker) Stop() {
	close(t.done)
}

// Send queues a status update. Drops the update when the queue is full;
// progress reporting must never stall a fetch.
func (t *Tracker) Send(update models.StatusUpdate) {
	select {
	case t.updates <- update:
	default:
		logging.D(2, "Dropped status update for item %d (queue full)", update.Position)
	}
}

// processUpdates flushes deduplicated updates until stopped.
func (t *Tracker) processUpdates(ctx context.Context) {
	var lastUpdate models.StatusUpdate
	for {
		select {
		case <-t.done:
			return
		case <-ctx.Done():
			return

		case update := <-t.updates:
			if update != lastUpdate {
				lastUpdate = update
				t.flush(ctx, update)
			}
		}
	}
}

// flush writes one update to the store.
func (t *Tracker) flush(ctx context.Context, update models.StatusUpdate) {
	if t.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := t.store.UpdateStatus(ctx, update); err != nil {
		logging.D(1, "Failed to flush status update for item %d: %v", update.Position, err)
		return
	}
	logging.D(2, "Flushed status update for item %d (%.1f%%)", update.Position, update.Percent)
}
