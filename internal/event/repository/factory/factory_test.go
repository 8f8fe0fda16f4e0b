package factory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"calendar-schedule/config"
	"calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/event/repository/factory"
	"calendar-schedule/pkg/log"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{name: "local", cfg: config.StorageConfig{Backend: config.BackendLocal, Local: config.LocalStorageConfig{Path: path}}},
		{name: "memory", cfg: config.StorageConfig{Backend: config.BackendMemory}},
		{name: "remote", cfg: config.StorageConfig{Backend: config.BackendRemote, Remote: config.RemoteStorageConfig{BaseURL: "http://127.0.0.1:1/api/v1", Timeout: time.Second}}},
		{name: "gcalendar missing credentials", cfg: config.StorageConfig{Backend: config.BackendGCalendar, GCalendar: config.GCalendarStorageConfig{CredentialsPath: filepath.Join(t.TempDir(), "missing.json")}}, wantErr: true},
		{name: "unknown", cfg: config.StorageConfig{Backend: "postgres"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := factory.New(ctx, tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Fatal("expected a repository")
			}
		})
	}
}

func TestNew_LocalPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	cfg := config.StorageConfig{Backend: config.BackendLocal, Local: config.LocalStorageConfig{Path: path}}

	r, err := factory.New(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.CreateEvent(ctx, repository.CreateEventOptions{Date: "2024-07-01", Time: "09:00", Title: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}
