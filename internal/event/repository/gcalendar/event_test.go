package gcalendar_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"calendar-schedule/internal/event"
	"calendar-schedule/internal/event/repository"
	gcalrepo "calendar-schedule/internal/event/repository/gcalendar"
	"calendar-schedule/internal/event/repository/repotest"
	"calendar-schedule/pkg/gcalendar"
	"calendar-schedule/pkg/log"
)

// fakeClient keeps events in insertion order and answers window queries the
// way the Calendar API does for single events.
type fakeClient struct {
	mu      sync.Mutex
	seq     int
	events  []gcalendar.Event
	lastReq gcalendar.ListEventsRequest
	failAll bool
}

func (f *fakeClient) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("googleapi: Error 503")
	}
	f.seq++
	ev := gcalendar.Event{
		ID:        fmt.Sprintf("g%d", f.seq),
		Summary:   req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Private:   req.Private,
	}
	f.events = append(f.events, ev)
	return &ev, nil
}

func (f *fakeClient) ListEvents(_ context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = req
	if f.failAll {
		return nil, errors.New("googleapi: Error 503")
	}
	var out []gcalendar.Event
	for _, ev := range f.events {
		if req.PrivateProperty != "" && req.PrivateProperty != "source="+ev.Private["source"] {
			continue
		}
		if !ev.StartTime.Before(req.TimeMin) && ev.StartTime.Before(req.TimeMax) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeClient) DeleteEvent(_ context.Context, _ string, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return false, errors.New("googleapi: Error 503")
	}
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newRepo(t *testing.T, client gcalrepo.Client) repository.Repository {
	t.Helper()
	r, err := gcalrepo.New(client, gcalrepo.Config{Timezone: "UTC"}, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestGCalendarRepository_Contract(t *testing.T) {
	repotest.RunContract(t, func(t *testing.T) repository.Repository {
		return newRepo(t, &fakeClient{})
	})
}

func TestGCalendarRepository_New(t *testing.T) {
	if _, err := gcalrepo.New(nil, gcalrepo.Config{}, log.NewNop()); err == nil {
		t.Error("expected error for nil client")
	}
	if _, err := gcalrepo.New(&fakeClient{}, gcalrepo.Config{Timezone: "Mars/Olympus"}, log.NewNop()); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestGCalendarRepository_CreateUsesDurationAndTag(t *testing.T) {
	client := &fakeClient{}
	r, err := gcalrepo.New(client, gcalrepo.Config{Timezone: "Europe/Berlin", Duration: time.Hour}, log.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := r.CreateEvent(context.Background(), repository.CreateEventOptions{Date: "2024-07-01", Time: "23:30", Title: "Late"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := client.events[0]
	if got := ev.EndTime.Sub(ev.StartTime); got != time.Hour {
		t.Errorf("expected 1h duration, got %v", got)
	}
	if ev.StartTime.Location().String() != "Europe/Berlin" || ev.StartTime.Hour() != 23 {
		t.Errorf("expected wall clock in configured zone, got %v", ev.StartTime)
	}
	if ev.Private[gcalrepo.SourceKey] != gcalrepo.SourceValue {
		t.Errorf("expected source tag, got %v", ev.Private)
	}
}

func TestGCalendarRepository_IgnoresForeignAndAllDayEvents(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{events: []gcalendar.Event{
		{ID: "mine", Summary: "Mine", StartTime: day.Add(9 * time.Hour), Private: map[string]string{"source": gcalrepo.SourceValue}},
		{ID: "theirs", Summary: "Theirs", StartTime: day.Add(10 * time.Hour)},
		{ID: "allday", Summary: "Holiday", StartTime: day, AllDay: true, Private: map[string]string{"source": gcalrepo.SourceValue}},
	}}
	r := newRepo(t, client)

	got, err := r.ListEvents(context.Background(), repository.ListEventsOptions{Date: "2024-07-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "mine" || got[0].Time != "09:00" {
		t.Errorf("unexpected events: %+v", got)
	}
	if client.lastReq.PrivateProperty != gcalrepo.SourceKey+"="+gcalrepo.SourceValue {
		t.Errorf("expected source filter, got %q", client.lastReq.PrivateProperty)
	}

	stats, err := r.StatsByMonth(context.Background(), repository.StatsByMonthOptions{Year: 2024, Month: time.July})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 1 || stats["2024-07-01"] != 1 {
		t.Errorf("stats must count only owned timed events, got %v", stats)
	}

	// All-day events are hidden from List and Stats but still owned.
	if err := r.ClearEvents(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.events) != 1 || client.events[0].ID != "theirs" {
		t.Errorf("clear must only remove owned events, left %+v", client.events)
	}
}

func TestGCalendarRepository_MalformedDate(t *testing.T) {
	client := &fakeClient{}
	r := newRepo(t, client)

	got, err := r.ListEvents(context.Background(), repository.ListEventsOptions{Date: "July 1st"})
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil result, got %v, %v", got, err)
	}
	if !client.lastReq.TimeMin.IsZero() {
		t.Error("malformed dates must not reach the API")
	}
}

func TestGCalendarRepository_APIFailureIsTransport(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t, &fakeClient{failAll: true})

	_, err := r.CreateEvent(ctx, repository.CreateEventOptions{Date: "2024-07-01", Time: "09:00", Title: "x"})
	if !errors.Is(err, event.ErrTransport) || !errors.Is(err, repository.ErrFailedToInsert) {
		t.Errorf("create: expected transport error, got %v", err)
	}
	_, err = r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
	if !errors.Is(err, event.ErrTransport) {
		t.Errorf("list: expected transport error, got %v", err)
	}
	_, err = r.DeleteEvent(ctx, "g1")
	if !errors.Is(err, event.ErrTransport) {
		t.Errorf("delete: expected transport error, got %v", err)
	}
	_, err = r.StatsByMonth(ctx, repository.StatsByMonthOptions{Year: 2024, Month: time.July})
	if !errors.Is(err, event.ErrTransport) {
		t.Errorf("stats: expected transport error, got %v", err)
	}
	if err := r.ClearEvents(ctx); !errors.Is(err, event.ErrTransport) {
		t.Errorf("clear: expected transport error, got %v", err)
	}
}
