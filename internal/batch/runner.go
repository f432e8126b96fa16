// Package batch runs the configured items sequentially and aggregates
// per-item outcomes into a batch result.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fetcharr/internal/contracts"
	"fetcharr/internal/cookies"
	"fetcharr/internal/models"
	"fetcharr/internal/opts"
	"fetcharr/internal/plan"
	"fetcharr/internal/utils/logging"
)

// Runner iterates items in input order, one at a time, isolating each
// item's failure behind a JobOutcome.
type Runner struct {
	Global  models.GlobalConfig
	DL      contracts.Downloader
	History contracts.HistoryStore // nil disables history recording
	Titles  map[string]string      // optional pre-flight probe results, keyed by URL
}

// New returns a batch runner with the injected downloader and store.
func New(global models.GlobalConfig, dl contracts.Downloader, history contracts.HistoryStore) *Runner {
	return &Runner{
		Global:  global,
		DL:      dl,
		History: history,
	}
}

// Run processes every item in order. Item failures (bad spec or
// retrieval errors) are recorded and the loop continues, unless the
// global stop_on_error flag is set, in which case the batch terminates
// right after recording the failing outcome. An empty item list is
// rejected before the loop starts.
func (r *Runner) Run(ctx context.Context, items []models.ItemSpec) (*models.BatchResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("config must contain a non-empty items list: %w", models.ErrInvalidSpec)
	}

	result := &models.BatchResult{Status: models.BatchCompletedAll}
	total := len(items)

	for i, item := range items {
		position := i + 1
		logging.I("[%d/%d] processing", position, total)

		err := r.runItem(ctx, item, position)

		outcome := models.JobOutcome{
			Position:   position,
			URL:        item.URL,
			Success:    err == nil,
			Err:        err,
			FinishedAt: time.Now(),
		}
		result.Outcomes = append(result.Outcomes, outcome)
		r.record(ctx, outcome)

		if err != nil {
			logging.E("Failed item %d: %v", position, err)
			if r.Global.StopOnError {
				result.Status = models.BatchAbortedEarly
				return result, nil
			}
		}
	}

	logging.I("All tasks finished.")
	return result, nil
}

// runItem merges, resolves and downloads a single item.
func (r *Runner) runItem(ctx context.Context, item models.ItemSpec, position int) error {
	eff := opts.Merge(r.Global, item)

	p, err := plan.Resolve(eff, item.URL)
	if err != nil {
		return err
	}

	// An explicit cookies path wins over browser extraction. Extraction
	// failures degrade to a cookie-less fetch, the engine decides if
	// that is fatal.
	if p.CookieFile == "" && eff.CookiesFromBrowser != "" {
		cookiePath, err := cookies.ExportForURL(ctx, item.URL, eff.CookiesFromBrowser, filepath.Dir(p.OutputTemplate))
		if err != nil {
			logging.W("Could not export browser cookies for %s: %v", item.URL, err)
		} else if cookiePath != "" {
			p.CookieFile = cookiePath
		}
	}

	if title := r.Titles[item.URL]; title != "" {
		logging.I("Start: %s (%s)", title, item.URL)
	} else {
		logging.I("Start: %s", item.URL)
	}

	if err := r.DL.Download(ctx, p, position); err != nil {
		return err
	}

	logging.S("Done: %s", item.URL)
	return nil
}

// record writes the outcome into the history store, if one is wired.
func (r *Runner) record(ctx context.Context, outcome models.JobOutcome) {
	if r.History == nil {
		return
	}
	if err := r.History.RecordOutcome(ctx, outcome); err != nil {
		logging.D(1, "Failed to record outcome for item %d: %v", outcome.Position, err)
	}
}
