package gcalendar

import (
	"context"
	"fmt"
	"time"

	"calendar-schedule/internal/event/repository"
	"calendar-schedule/pkg/datemath"
	"calendar-schedule/pkg/gcalendar"
	"calendar-schedule/pkg/log"
)

const (
	// SourceKey and SourceValue tag every event this backend creates so that
	// listing and clearing never touch events owned by someone else.
	SourceKey   = "source"
	SourceValue = "calendar-schedule"

	DefaultDuration = 30 * time.Minute
)

// Client is the subset of the Google Calendar client the repository needs.
type Client interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) (bool, error)
}

// Config describes where events live and how they are shaped.
type Config struct {
	CalendarID string
	Timezone   string
	Duration   time.Duration
}

type implRepository struct {
	client     Client
	calendarID string
	duration   time.Duration
	dates      *datemath.Parser
	l          log.Logger
}

// New creates a Repository backed by a Google Calendar.
func New(client Client, cfg Config, l log.Logger) (repository.Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("event/repository/gcalendar: client is required")
	}
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.PrimaryCalendar
	}
	return &implRepository{
		client:     client,
		calendarID: cfg.CalendarID,
		duration:   cfg.Duration,
		dates:      dates,
		l:          l,
	}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/gcalendar.%s", method)
}
