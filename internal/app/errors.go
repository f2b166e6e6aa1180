package app

import "errors"

// Sentinel kinds for request validation failures.
var (
	ErrMissingOwner     = errors.New("owner must not be empty")
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 100")
	ErrEmptyCSV         = errors.New("csv input has no header row")
)
