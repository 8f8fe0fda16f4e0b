package calendar

import (
	"time"

	"calendar-schedule/internal/model"
)

// DayCell is one annotated slot of the month grid.
type DayCell struct {
	Date       string
	Day        int
	Weekday    time.Weekday
	InMonth    bool
	IsToday    bool
	IsSelected bool
	EventCount int
}

// MonthView is everything a front end needs to draw the calendar and the
// selected day's schedule.
type MonthView struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Weekdays  []time.Weekday // column headers, WeekStart first
	Cells     []DayCell      // always calgrid.Cells long
	Selected  string
	Events    []model.Event
}

// LoadInput is the state to render plus the date considered "today".
type LoadInput struct {
	State ViewState
	Today time.Time
}

// ExportInput selects the month to export.
type ExportInput struct {
	Year  int
	Month time.Month
}

// ExportOutput holds every event of the month in date then time order.
type ExportOutput struct {
	Events []model.Event
}
