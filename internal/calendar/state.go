package calendar

import (
	"time"

	"calendar-schedule/pkg/datemath"
)

// ViewState is what the user is looking at: a displayed month and a
// selected day. It is a value; navigation returns a new state.
type ViewState struct {
	Month    time.Time // midnight on the first of the displayed month
	Selected time.Time // midnight on the selected day
}

// NewViewState opens the calendar on today's month with today selected.
func NewViewState(today time.Time) ViewState {
	day := startOfDay(today)
	return ViewState{Month: datemath.FirstOfMonth(day), Selected: day}
}

// Prev moves the displayed month back by one. The selection is kept.
func (s ViewState) Prev() ViewState {
	s.Month = s.Month.AddDate(0, -1, 0)
	return s
}

// Next moves the displayed month forward by one. The selection is kept.
func (s ViewState) Next() ViewState {
	s.Month = s.Month.AddDate(0, 1, 0)
	return s
}

// Today jumps back to today's month and selects today.
func (s ViewState) Today(today time.Time) ViewState {
	return NewViewState(today)
}

// Select focuses a day without changing the displayed month, so picking a
// padding cell does not scroll the grid.
func (s ViewState) Select(day time.Time) ViewState {
	s.Selected = startOfDay(day)
	return s
}

// ShowMonth displays the given month and keeps the selection.
func (s ViewState) ShowMonth(year int, month time.Month) ViewState {
	s.Month = time.Date(year, month, 1, 0, 0, 0, 0, s.Month.Location())
	return s
}

// SelectedISO is the selected day as YYYY-MM-DD.
func (s ViewState) SelectedISO() string {
	return datemath.FormatDate(s.Selected)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
