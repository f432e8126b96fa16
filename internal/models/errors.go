package models

import "errors"

// ErrInvalidSpec marks malformed or incomplete configuration: missing
// URL, empty item list, missing or unreadable config file. Pre-flight
// occurrences abort the run; per-item occurrences fail only that item.
var ErrInvalidSpec = errors.New("invalid spec")

// ErrAbortedEarly marks a batch terminated by the stop_on_error policy
// before all items were attempted.
var ErrAbortedEarly = errors.New("batch aborted early")
