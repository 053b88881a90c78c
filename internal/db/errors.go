package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidSubmission  = errors.New("submission rejected by database constraints")
)
