package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/calgrid"
	"calendar-schedule/pkg/datemath"
)

// Load renders the month view for input.State.
func (uc *implUseCase) Load(ctx context.Context, input calendar.LoadInput) (calendar.MonthView, error) {
	state := input.State
	year, month := state.Month.Year(), state.Month.Month()
	selected := state.SelectedISO()
	today := datemath.FormatDate(input.Today)

	var (
		cells  []calgrid.Cell
		counts map[string]int
		events []model.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cells = calgrid.BuildFrom(year, month, uc.weekStart)
		return nil
	})
	g.Go(func() error {
		out, err := uc.events.StatsByMonth(gctx, event.StatsByMonthInput{Year: year, Month: month})
		if err != nil {
			return err
		}
		counts = out.Counts
		return nil
	})
	g.Go(func() error {
		out, err := uc.events.List(gctx, event.ListEventsInput{Date: selected})
		if err != nil {
			return err
		}
		events = out.Events
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Load %04d-%02d: %v", year, month, err)
		return calendar.MonthView{}, err
	}

	view := calendar.MonthView{
		Year:      year,
		Month:     month,
		WeekStart: uc.weekStart,
		Weekdays:  weekdays(uc.weekStart),
		Cells:     make([]calendar.DayCell, len(cells)),
		Selected:  selected,
		Events:    events,
	}
	for i, c := range cells {
		iso := datemath.FormatDate(c.Date)
		view.Cells[i] = calendar.DayCell{
			Date:       iso,
			Day:        c.Date.Day(),
			Weekday:    c.Date.Weekday(),
			InMonth:    c.InMonth,
			IsToday:    iso == today,
			IsSelected: iso == selected,
			// Padding days come from other months, which the stats call
			// does not cover.
			EventCount: counts[iso],
		}
	}
	return view, nil
}
