package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a customer or action does not exist.
	ErrNotFound = errors.New("not found")

	// ErrModelUnavailable is returned when no scoring model is active.
	ErrModelUnavailable = errors.New("no active scoring model")
)

// ValidationError reports a malformed or incomplete inbound event. The event
// is never persisted.
type ValidationError struct {
	Source SourceKind
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s event: field %q %s", e.Source, e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
