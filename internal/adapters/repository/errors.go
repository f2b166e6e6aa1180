package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNilDB = errors.New("nil database handle")
)
