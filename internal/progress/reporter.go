// Package progress normalizes raw engine progress events into status
// updates and console output.
package progress

import (
	"strconv"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
	"fetcharr/internal/utils/logging"
)

// Raw event statuses pushed by the retrieval engine.
const (
	EventDownloading = "downloading"
	EventFinished    = "finished"
)

// Event is one raw progress event. Fields are untrimmed engine strings;
// missing values are empty.
type Event struct {
	Status  string
	Percent string // e.g. " 45.2%"
	Speed   string // e.g. "2.50MiB/s"
	ETA     string // seconds, e.g. "35"
}

// Hook receives progress events during a fetch. Implementations must be
// fire-and-forget: never block, never fail the job.
type Hook func(Event)

// Reporter translates events for one job into log lines and tracker
// updates. It keeps no state across events.
type Reporter struct {
	Position int
	URL      string

	tracker *Tracker
}

// NewReporter returns a reporter for the given job.
func NewReporter(position int, url string, tracker *Tracker) *Reporter {
	return &Reporter{
		Position: position,
		URL:      url,
		tracker:  tracker,
	}
}

// Handle normalizes one event. Malformed or missing fields degrade to
// empty strings; reporting never interrupts the fetch.
func (r *Reporter) Handle(e Event) {
	switch e.Status {
	case EventFinished:
		logging.I("download finished; post-processing...")
		r.send(100.0)

	case EventDownloading:
		pct := strings.TrimSpace(e.Percent)
		speed := strings.TrimSpace(e.Speed)
		eta := strings.TrimSpace(e.ETA)
		logging.I("downloading %s @ %s ETA %ss", pct, speed, eta)

		if f, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64); err == nil {
			r.send(f)
		}
	}
}

// send forwards a percentage update into the tracker, if one is wired.
func (r *Reporter) send(pct float64) {
	if r.tracker == nil {
		return
	}
	r.tracker.Send(models.StatusUpdate{
		Position: r.Position,
		URL:      r.URL,
		Status:   consts.DLStatusDownloading,
		Percent:  pct,
	})
}
