package usecase

import (
	"context"
	"time"

	"calendar-schedule/internal/event"
	repo "calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/datemath"
)

// List returns the events of one day. A malformed date yields an empty list.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if !datemath.IsDate(input.Date) {
		uc.l.Debugf(ctx, "uc.List: ignoring malformed date %q", input.Date)
		return event.ListEventsOutput{Events: []model.Event{}}, nil
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Date: input.Date})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return event.ListEventsOutput{Events: events}, nil
}

// StatsByMonth returns per-day event counts for the month.
// A month outside 1..12 yields an empty result.
func (uc *implUseCase) StatsByMonth(ctx context.Context, input event.StatsByMonthInput) (event.StatsByMonthOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		uc.l.Debugf(ctx, "uc.StatsByMonth: ignoring month %d", input.Month)
		return event.StatsByMonthOutput{Counts: map[string]int{}}, nil
	}

	counts, err := uc.repo.StatsByMonth(ctx, repo.StatsByMonthOptions{Year: input.Year, Month: input.Month})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StatsByMonth StatsByMonth: %v", err)
		return event.StatsByMonthOutput{}, err
	}
	if counts == nil {
		counts = map[string]int{}
	}
	return event.StatsByMonthOutput{Counts: counts}, nil
}
