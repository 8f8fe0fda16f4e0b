// Package repotest holds the behaviour every event backend must share.
package repotest

import (
	"context"
	"testing"
	"time"

	"calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/model"
)

// RunContract exercises repo-independent guarantees against a fresh
// repository returned by newRepo for every subtest.
func RunContract(t *testing.T, newRepo func(t *testing.T) repository.Repository) {
	t.Helper()
	ctx := context.Background()

	create := func(t *testing.T, r repository.Repository, date, clock, title string) model.Event {
		t.Helper()
		ev, err := r.CreateEvent(ctx, repository.CreateEventOptions{Date: date, Time: clock, Title: title})
		if err != nil {
			t.Fatalf("CreateEvent(%s %s %q): %v", date, clock, title, err)
		}
		return ev
	}

	t.Run("list empty", func(t *testing.T) {
		r := newRepo(t)
		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no events, got %d", len(got))
		}
	})

	t.Run("create then list round trip", func(t *testing.T) {
		r := newRepo(t)
		created := create(t, r, "2024-07-01", "09:30", "Standup")
		if created.ID == "" {
			t.Fatal("expected id to be assigned")
		}

		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 event, got %d", len(got))
		}
		if got[0] != created {
			t.Errorf("listed %+v, created %+v", got[0], created)
		}
	})

	t.Run("list filters by date and sorts by time", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "2024-07-01", "14:00", "Review")
		create(t, r, "2024-07-02", "08:00", "Other day")
		create(t, r, "2024-07-01", "09:00", "First")
		create(t, r, "2024-07-01", "14:00", "Review follow-up")
		create(t, r, "2024-07-01", "11:15", "Lunch")

		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"First", "Lunch", "Review", "Review follow-up"}
		if len(got) != len(want) {
			t.Fatalf("expected %d events, got %d", len(want), len(got))
		}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
			}
			if got[i].Date != "2024-07-01" {
				t.Errorf("position %d: leaked event from %s", i, got[i].Date)
			}
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		r := newRepo(t)
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			ev := create(t, r, "2024-07-01", "10:00", "Same slot")
			if seen[ev.ID] {
				t.Fatalf("duplicate id %s", ev.ID)
			}
			seen[ev.ID] = true
		}
	})

	t.Run("delete", func(t *testing.T) {
		r := newRepo(t)
		keep := create(t, r, "2024-07-01", "09:00", "Keep")
		drop := create(t, r, "2024-07-01", "10:00", "Drop")

		removed, err := r.DeleteEvent(ctx, drop.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !removed {
			t.Error("expected removed=true")
		}

		got, _ := r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
		if len(got) != 1 || got[0].ID != keep.ID {
			t.Errorf("unexpected events after delete: %+v", got)
		}

		removed, err = r.DeleteEvent(ctx, drop.ID)
		if err != nil {
			t.Fatalf("second delete should be a no-op, got %v", err)
		}
		if removed {
			t.Error("expected removed=false for unknown id")
		}
	})

	t.Run("stats by month", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "2024-07-01", "09:00", "A")
		create(t, r, "2024-07-01", "10:00", "B")
		create(t, r, "2024-07-31", "23:00", "C")
		create(t, r, "2024-08-01", "00:00", "D")
		create(t, r, "2024-06-30", "12:00", "E")

		got, err := r.StatsByMonth(ctx, repository.StatsByMonthOptions{Year: 2024, Month: time.July})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]int{"2024-07-01": 2, "2024-07-31": 1}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for date, n := range want {
			if got[date] != n {
				t.Errorf("%s: expected %d, got %d", date, n, got[date])
			}
		}
	})

	t.Run("clear", func(t *testing.T) {
		r := newRepo(t)
		create(t, r, "2024-07-01", "09:00", "A")
		create(t, r, "2024-07-02", "09:00", "B")

		if err := r.ClearEvents(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := r.ListEvents(ctx, repository.ListEventsOptions{Date: "2024-07-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty after clear, got %d", len(got))
		}
		stats, err := r.StatsByMonth(ctx, repository.StatsByMonthOptions{Year: 2024, Month: time.July})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats) != 0 {
			t.Errorf("expected empty stats after clear, got %v", stats)
		}
	})
}
