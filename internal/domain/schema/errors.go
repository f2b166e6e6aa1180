package schema

import (
	"errors"
	"fmt"
)

// ErrSchema is the sentinel kind for unresolvable headers; callers can
// test for it with errors.Is regardless of the missing requirement.
var ErrSchema = errors.New("unresolvable schema")

// Error reports which header requirement could not be resolved.
type Error struct {
	Missing string
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not resolve required columns: missing %s", e.Missing)
}

// Unwrap makes errors.Is(err, ErrSchema) succeed for any *Error.
func (e *Error) Unwrap() error { return ErrSchema }
