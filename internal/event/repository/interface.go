package repository

import (
	"context"

	"calendar-schedule/internal/model"
)

// Repository is the composed interface every event backend implements.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// A call that has returned is visible to every call issued after it.
type EventRepository interface {
	// ListEvents returns the events on opt.Date ordered by time. Events that
	// share a time keep their insertion order.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	// CreateEvent assigns an id and persists the event before returning it.
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// DeleteEvent reports whether an event with id existed.
	DeleteEvent(ctx context.Context, id string) (bool, error)
	// StatsByMonth counts events per date for every day of the month.
	StatsByMonth(ctx context.Context, opt StatsByMonthOptions) (map[string]int, error)
	// ClearEvents wipes the whole collection.
	ClearEvents(ctx context.Context) error
}
