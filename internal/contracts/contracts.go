// Package contracts defines the narrow interfaces between the batch
// loop and its collaborators.
package contracts

import (
	"context"

	"fetcharr/internal/models"
)

// Downloader executes one resolved fetch plan. Implementations own the
// retrieval protocol and transcoding; the batch loop only sees success
// or an error.
type Downloader interface {
	Download(ctx context.Context, plan *models.FetchPlan, position int) error
}

// HistoryStore persists job outcomes and in-flight status updates.
// Implementations must tolerate being skipped entirely; history is never
// allowed to fail a batch.
type HistoryStore interface {
	RecordOutcome(ctx context.Context, outcome models.JobOutcome) error
	UpdateStatus(ctx context.Context, update models.StatusUpdate) error
}

// Prober checks URLs ahead of the batch and reports what it found.
type Prober interface {
	Probe(ctx context.Context, urls []string) map[string]string
}
