package transaction

import "errors"

// ErrNotFound covers both a missing record and a record owned by another
// user, so callers cannot probe other users' ids.
var ErrNotFound = errors.New("transaction not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
