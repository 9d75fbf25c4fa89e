package orchestrators

import "errors"

// ErrDeleteConflict is returned when an entity cannot be deleted because
// bookings still reference it. The caller must delete those bookings first.
var ErrDeleteConflict = errors.New("existing bookings reference this record")

// ValidationError wraps a domain validation failure so transports can tell
// rejected input apart from infrastructure errors.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
