package models

import "fetcharr/internal/domain/consts"

// StatusUpdate models a normalized progress update for a single job.
type StatusUpdate struct {
	Position int
	URL      string
	Status   consts.DownloadStatus
	Percent  float64
	Error    error
}
