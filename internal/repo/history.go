// Package repo persists download history to the database.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"

	"github.com/Masterminds/squirrel"
)

// HistoryStore keeps the latest known state of every item, keyed by the
// item's position and URL.
type HistoryStore struct {
	DB *sql.DB
}

// NewHistoryStore returns a history store with injected database.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{DB: db}
}

// UpdateStatus writes an in-flight status update for an item, creating
// the row on first sight.
func (hs *HistoryStore) UpdateStatus(ctx context.Context, update models.StatusUpdate) error {
	normalizeStatus(&update.Percent, &update.Status)

	var errText any
	if update.Error != nil {
		errText = update.Error.Error()
	}

	return hs.upsert(ctx, update.Position, update.URL, update.Status, update.Percent, errText)
}

// RecordOutcome writes an item's terminal state.
func (hs *HistoryStore) RecordOutcome(ctx context.Context, outcome models.JobOutcome) error {
	status := consts.DLStatusCompleted
	pct := 100.0
	var errText any

	if !outcome.Success {
		status = consts.DLStatusFailed
		pct = 0.0
		if outcome.Err != nil {
			errText = outcome.Err.Error()
		}
	}

	return hs.upsert(ctx, outcome.Position, outcome.URL, status, pct, errText)
}

// upsert updates the row for (position, url), inserting it when absent.
func (hs *HistoryStore) upsert(ctx context.Context, position int, url string, status consts.DownloadStatus, pct float64, errText any) error {
	tx, err := hs.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.E("Failed to rollback history write for item %d: %v", position, rbErr)
			}
		}
	}()

	where := squirrel.Eq{
		consts.QDLPosition: position,
		consts.QDLURL:      url,
	}

	res, err := squirrel.
		Update(consts.DBDownloads).
		Set(consts.QDLStatus, status).
		Set(consts.QDLPct, pct).
		Set(consts.QDLError, errText).
		Set(consts.QDLUpdatedAt, time.Now()).
		Where(where).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update history for item %d: %w", position, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for item %d: %w", position, err)
	}

	if affected == 0 {
		_, err = squirrel.
			Insert(consts.DBDownloads).
			Columns(consts.QDLPosition, consts.QDLURL, consts.QDLStatus, consts.QDLPct, consts.QDLError).
			Values(position, url, status, pct, errText).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert history for item %d: %w", position, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history write: %w", err)
	}
	return nil
}

// GetStatus reads back an item's last known status.
func (hs *HistoryStore) GetStatus(ctx context.Context, position int, url string) (consts.DownloadStatus, float64, error) {
	var (
		status consts.DownloadStatus
		pct    float64
	)

	err := squirrel.
		Select(consts.QDLStatus, consts.QDLPct).
		From(consts.DBDownloads).
		Where(squirrel.Eq{consts.QDLPosition: position, consts.QDLURL: url}).
		RunWith(hs.DB).
		QueryRowContext(ctx).
		Scan(&status, &pct)
	if err != nil {
		return "", 0, fmt.Errorf("failed to query history for item %d: %w", position, err)
	}

	return status, pct, nil
}

// normalizeStatus clamps percentages and promotes full downloads to the
// completed status.
func normalizeStatus(pct *float64, status *consts.DownloadStatus) {
	if *pct >= 100.0 {
		*pct = 100.0
		if *status == consts.DLStatusDownloading {
			*status = consts.DLStatusCompleted
		}
	} else if *pct < 0.0 {
		*pct = 0.0
	}
}
