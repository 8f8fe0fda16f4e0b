// Package calgrid lays a month out on a fixed 6x7 grid.
package calgrid

import "time"

const (
	DaysPerWeek = 7
	Weeks       = 6
	Cells       = DaysPerWeek * Weeks
)

// Cell is one slot of the month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// Build returns the Sunday-first grid for the month.
func Build(year int, month time.Month) []Cell {
	return BuildFrom(year, month, time.Sunday)
}

// BuildFrom returns the 42 cells covering the month, starting each week on
// weekStart. Leading cells are the tail of the previous month, trailing cells
// the head of the next one, so every month occupies the same six rows.
// Dates are midnight in time.Local.
func BuildFrom(year int, month time.Month, weekStart time.Weekday) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := (int(first.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek

	// time.Date may have normalised an out-of-range month.
	year, month = first.Year(), first.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]Cell, 0, Cells)
	for i := lead; i > 0; i-- {
		cells = append(cells, Cell{Date: time.Date(year, month, 1-i, 0, 0, 0, 0, time.Local)})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, Cell{Date: time.Date(year, month, day, 0, 0, 0, 0, time.Local), InMonth: true})
	}
	for day := daysInMonth + 1; len(cells) < Cells; day++ {
		cells = append(cells, Cell{Date: time.Date(year, month, day, 0, 0, 0, 0, time.Local)})
	}
	return cells
}
