package event

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input the store refuses to persist.
	ErrValidation = errors.New("validation failed")
	// ErrTransport marks a disk or network failure in the backing store.
	ErrTransport = errors.New("event store unavailable")
	// ErrNotFound is never returned by Remove: an unknown id reports
	// Removed=false instead.
	ErrNotFound = errors.New("event not found")

	ErrEmptyTitle  = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrInvalidDate = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidTime = fmt.Errorf("%w: time must be HH:MM", ErrValidation)
)
