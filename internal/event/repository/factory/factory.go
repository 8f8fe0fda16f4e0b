// Package factory picks the event backend named in configuration.
package factory

import (
	"context"
	"fmt"

	"calendar-schedule/config"
	"calendar-schedule/internal/event/repository"
	gcalrepo "calendar-schedule/internal/event/repository/gcalendar"
	"calendar-schedule/internal/event/repository/local"
	"calendar-schedule/internal/event/repository/remote"
	"calendar-schedule/pkg/gcalendar"
	"calendar-schedule/pkg/kvstore"
	"calendar-schedule/pkg/log"
)

// New builds the Repository selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		l.Infof(ctx, "Event store: local file %s", cfg.Local.Path)
		return local.New(kvstore.NewFile(cfg.Local.Path), l), nil

	case config.BackendMemory:
		l.Infof(ctx, "Event store: in-memory (latency=%s)", cfg.Memory.Latency)
		return local.New(kvstore.NewMemory(), l, local.WithLatency(cfg.Memory.Latency)), nil

	case config.BackendRemote:
		l.Infof(ctx, "Event store: remote %s", cfg.Remote.BaseURL)
		return remote.New(remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout), l), nil

	case config.BackendGCalendar:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GCalendar.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
		l.Infof(ctx, "Event store: Google Calendar %s", cfg.GCalendar.CalendarID)
		return gcalrepo.New(client, gcalrepo.Config{
			CalendarID: cfg.GCalendar.CalendarID,
			Timezone:   cfg.GCalendar.Timezone,
			Duration:   cfg.GCalendar.EventDuration,
		}, l)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
