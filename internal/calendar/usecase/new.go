package usecase

import (
	"time"

	"calendar-schedule/internal/event"
	"calendar-schedule/pkg/log"
)

type implUseCase struct {
	events    event.UseCase
	weekStart time.Weekday
	l         log.Logger
}

// New creates a calendar UseCase reading through the event use case.
func New(events event.UseCase, weekStart time.Weekday, l log.Logger) *implUseCase {
	return &implUseCase{
		events:    events,
		weekStart: weekStart,
		l:         l,
	}
}
