package usecase

import (
	"context"
	"sort"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/internal/model"
)

// Export gathers every event of the month using only the stats and list
// operations, so it works on any backend.
func (uc *implUseCase) Export(ctx context.Context, input calendar.ExportInput) (calendar.ExportOutput, error) {
	stats, err := uc.events.StatsByMonth(ctx, event.StatsByMonthInput{Year: input.Year, Month: input.Month})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export StatsByMonth: %v", err)
		return calendar.ExportOutput{}, err
	}

	dates := make([]string, 0, len(stats.Counts))
	for d := range stats.Counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	events := make([]model.Event, 0)
	for _, d := range dates {
		out, err := uc.events.List(ctx, event.ListEventsInput{Date: d})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Export List %s: %v", d, err)
			return calendar.ExportOutput{}, err
		}
		events = append(events, out.Events...)
	}
	return calendar.ExportOutput{Events: events}, nil
}
