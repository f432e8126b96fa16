package models

import "time"

// BatchStatus is the terminal state of a batch run.
type BatchStatus string

const (
	BatchCompletedAll BatchStatus = "completed-all"
	BatchAbortedEarly BatchStatus = "aborted-early"
)

// JobOutcome is the result of one attempted item. Position is 1-based.
// Never mutated after creation.
type JobOutcome struct {
	Position   int       `json:"position"`
	URL        string    `json:"url"`
	Success    bool      `json:"success"`
	Err        error     `json:"-"`
	FinishedAt time.Time `json:"finished_at"`
}

// BatchResult is the ordered account of a batch run: one outcome per
// attempted item, in input order. Items never attempted (early abort)
// are absent.
type BatchResult struct {
	Outcomes []JobOutcome
	Status   BatchStatus
}

// Failed counts the failed outcomes.
func (r *BatchResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Success {
			n++
		}
	}
	return n
}
