package matching

import "errors"

// Sentinel kinds for matching errors.
var (
	// ErrEmptyStore distinguishes "no contacts loaded" from the valid
	// empty result of a match run with no qualifying pairs.
	ErrEmptyStore = errors.New("no contacts in store; load contacts first")
)
