// Package app wires the batch pipeline together and runs it.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"fetcharr/internal/batch"
	"fetcharr/internal/contracts"
	"fetcharr/internal/database"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/downloads"
	"fetcharr/internal/models"
	"fetcharr/internal/progress"
	"fetcharr/internal/repo"
	"fetcharr/internal/scraper"
	"fetcharr/internal/utils/logging"
	"fetcharr/internal/validation"
)

// Run executes the configured batch end to end. Returns ErrInvalidSpec
// for pre-flight config problems and ErrAbortedEarly when stop_on_error
// terminated the batch.
func Run(ctx context.Context, c *models.BatchConfig) error {
	outDir := c.OutputDir
	if outDir == "" {
		outDir = consts.DefaultOutputDir
	}

	// Log file and history db live under the output directory. Neither
	// is allowed to stop the batch.
	if _, err := validation.ValidateDirectory(outDir, true); err != nil {
		logging.W("Could not prepare output directory %q, file logging and history disabled: %v", outDir, err)
	} else {
		if err := logging.Setup(outDir); err != nil {
			logging.W("Log file was not created: %v", err)
		} else {
			defer logging.Close()
		}
	}

	var history contracts.HistoryStore
	db, err := database.InitDB(filepath.Join(outDir, consts.DBFileName))
	if err != nil {
		logging.W("Download history disabled: %v", err)
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				logging.E("failed to close history database: %v", err)
			}
		}()
		history = repo.NewHistoryStore(db)
	}

	tracker := progress.NewTracker(history)
	tracker.Start(ctx)
	defer tracker.Stop()

	runner := batch.New(c.GlobalConfig, downloads.New(tracker), history)

	if c.CheckLinks {
		urls := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			if item.URL != "" {
				urls = append(urls, item.URL)
			}
		}
		runner.Titles = scraper.NewProbe().Probe(ctx, urls)
	}

	result, err := runner.Run(ctx, c.Items)
	if err != nil {
		return err
	}

	summarize(result)

	if result.Status == models.BatchAbortedEarly {
		return fmt.Errorf("stopped after item %d of %d: %w",
			len(result.Outcomes), len(c.Items), models.ErrAbortedEarly)
	}
	return nil
}

// summarize prints the per-batch account of successes and failures.
func summarize(result *models.BatchResult) {
	failed := result.Failed()
	succeeded := len(result.Outcomes) - failed

	logging.I("Batch %s: %d succeeded, %d failed", result.Status, succeeded, failed)
	for _, o := range result.Outcomes {
		if !o.Success {
			logging.P("  item %d (%s): %v", o.Position, o.URL, o.Err)
		}
	}
}
