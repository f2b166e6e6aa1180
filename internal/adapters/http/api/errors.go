package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrMissingFile   = errors.New("missing file field")
	ErrBadThreshold  = errors.New("threshold must be an integer between 0 and 100")
	ErrUnknownFormat = errors.New("format must be json or csv")
)
