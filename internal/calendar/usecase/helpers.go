package usecase

import (
	"time"

	"calendar-schedule/pkg/calgrid"
)

// weekdays lists the grid's column order.
func weekdays(start time.Weekday) []time.Weekday {
	out := make([]time.Weekday, calgrid.DaysPerWeek)
	for i := range out {
		out[i] = time.Weekday((int(start) + i) % calgrid.DaysPerWeek)
	}
	return out
}
