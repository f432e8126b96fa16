// Package downloads hands resolved fetch plans to yt-dlp and watches
// its output for progress.
package downloads

import (
	"context"
	"fmt"
	"io"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/progress"
	"fetcharr/internal/utils/logging"
)

// Downloader runs yt-dlp for one plan at a time.
type Downloader struct {
	Tracker *progress.Tracker
}

// New returns a downloader reporting into the given tracker.
func New(tracker *progress.Tracker) *Downloader {
	return &Downloader{Tracker: tracker}
}

// Download executes the plan's fetch and transcode, blocking until the
// engine exits. Any engine failure surfaces as a single error; progress
// events flow through the reporter as they happen.
func (d *Downloader) Download(ctx context.Context, p *models.FetchPlan, position int) error {
	cmd := buildCommand(ctx, p)
	logging.D(1, "Built download command for URL %q:\n%v", p.URL, cmd.String())

	reporter := progress.NewReporter(position, p.URL, d.Tracker)
	d.sendStatus(position, p.URL, consts.DLStatusPending, 0.0, nil)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe error: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe error: %w", err)
	}

	scanDone := make(chan struct{})
	go func() {
		scanOutput(io.MultiReader(stdout, stderr), reporter.Handle)
		close(scanDone)
	}()

	if err := cmd.Start(); err != nil {
		d.sendStatus(position, p.URL, consts.DLStatusFailed, 0.0, err)
		return fmt.Errorf("command start error: %w", err)
	}

	<-scanDone

	if err := cmd.Wait(); err != nil {
		d.sendStatus(position, p.URL, consts.DLStatusFailed, 0.0, err)
		return fmt.Errorf("command wait error: %w", err)
	}

	d.sendStatus(position, p.URL, consts.DLStatusCompleted, 100.0, nil)
	return nil
}

// sendStatus pushes a lifecycle status update into the tracker.
func (d *Downloader) sendStatus(position int, url string, status consts.DownloadStatus, pct float64, err error) {
	if d.Tracker == nil {
		return
	}
	d.Tracker.Send(models.StatusUpdate{
		Position: position,
		URL:      url,
		Status:   status,
		Percent:  pct,
		Error:    err,
	})
}
