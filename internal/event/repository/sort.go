package repository

import (
	"sort"

	"calendar-schedule/internal/model"
)

// SortByTime orders events by time, keeping the incoming order for ties.
func SortByTime(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}
