package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToList   = errors.New("failed to list events")
	ErrFailedToDelete = errors.New("failed to delete event")
	ErrFailedToCount  = errors.New("failed to count events")
	ErrFailedToClear  = errors.New("failed to clear events")
)
