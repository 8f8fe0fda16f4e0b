package repository

import "time"

// ListEventsOptions filters events by calendar day.
type ListEventsOptions struct {
	Date string
}

// CreateEventOptions holds an already validated event.
type CreateEventOptions struct {
	Date  string
	Time  string
	Title string
}

// StatsByMonthOptions selects a month. Month is 1-based.
type StatsByMonthOptions struct {
	Year  int
	Month time.Month
}
