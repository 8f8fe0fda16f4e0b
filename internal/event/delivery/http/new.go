package http

import (
	"time"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       event.UseCase
	calendar calendar.UseCase
	now      func() time.Time
}

// New creates a new HTTP handler for the events and calendar API.
func New(l log.Logger, uc event.UseCase, cal calendar.UseCase) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		calendar: cal,
		now:      time.Now,
	}
}
