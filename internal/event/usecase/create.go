package usecase

import (
	"context"
	"strings"

	"calendar-schedule/internal/event"
	repo "calendar-schedule/internal/event/repository"
	"calendar-schedule/pkg/datemath"
)

// Create validates and stores a new event.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	input, err := uc.normalizeCreate(input)
	if err != nil {
		return event.CreateEventOutput{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Date:  input.Date,
		Time:  input.Time,
		Title: input.Title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: event %s on %s %s", ev.ID, ev.Date, ev.Time)
	return event.CreateEventOutput{Event: ev}, nil
}

func (uc *implUseCase) normalizeCreate(input event.CreateEventInput) (event.CreateEventInput, error) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Title = strings.TrimSpace(input.Title)

	if input.Title == "" {
		return input, event.ErrEmptyTitle
	}
	if !datemath.IsDate(input.Date) {
		return input, event.ErrInvalidDate
	}
	if !datemath.IsTime(input.Time) {
		return input, event.ErrInvalidTime
	}
	return input, nil
}
