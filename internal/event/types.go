package event

import (
	"time"

	"calendar-schedule/internal/model"
)

// --- UseCase Inputs ---

type ListEventsInput struct {
	Date string
}

type CreateEventInput struct {
	Date  string
	Time  string
	Title string
}

// StatsByMonthInput selects a calendar month; Month is 1-based.
type StatsByMonthInput struct {
	Year  int
	Month time.Month
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Events []model.Event
}

type CreateEventOutput struct {
	Event model.Event
}

// RemoveEventOutput reports whether an event was actually deleted.
// Removing an unknown id is not an error.
type RemoveEventOutput struct {
	Removed bool
}

// StatsByMonthOutput maps ISO dates to the number of events on that day.
// Days without events are absent.
type StatsByMonthOutput struct {
	Counts map[string]int
}
