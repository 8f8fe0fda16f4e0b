package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-schedule/internal/event"
	"calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/event/repository/local"
	"calendar-schedule/internal/event/usecase"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo records calls and returns canned errors.
type mockRepo struct {
	fail      bool
	listCalls int
	statCalls int
}

var errBackend = errors.New("backend down")

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	m.listCalls++
	if m.fail {
		return nil, errBackend
	}
	return nil, nil
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if m.fail {
		return model.Event{}, errBackend
	}
	return model.Event{ID: "1", Date: opt.Date, Time: opt.Time, Title: opt.Title}, nil
}

func (m *mockRepo) DeleteEvent(ctx context.Context, id string) (bool, error) {
	if m.fail {
		return false, errBackend
	}
	return false, nil
}

func (m *mockRepo) StatsByMonth(ctx context.Context, opt repository.StatsByMonthOptions) (map[string]int, error) {
	m.statCalls++
	if m.fail {
		return nil, errBackend
	}
	return nil, nil
}

func (m *mockRepo) ClearEvents(ctx context.Context) error {
	if m.fail {
		return errBackend
	}
	return nil
}

func newUseCase() event.UseCase {
	return usecase.New(local.New(kvstore.NewMemory(), &mockLogger{}), &mockLogger{})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   event.CreateEventInput
		wantErr error
		want    model.Event
	}{
		{
			name:  "trims title",
			input: event.CreateEventInput{Date: "2024-07-01", Time: "09:00", Title: "  Standup \n"},
			want:  model.Event{Date: "2024-07-01", Time: "09:00", Title: "Standup"},
		},
		{
			name:    "whitespace title",
			input:   event.CreateEventInput{Date: "2024-07-01", Time: "09:00", Title: "   "},
			wantErr: event.ErrEmptyTitle,
		},
		{
			name:    "empty title",
			input:   event.CreateEventInput{Date: "2024-07-01", Time: "09:00"},
			wantErr: event.ErrEmptyTitle,
		},
		{
			name:    "bad date",
			input:   event.CreateEventInput{Date: "07/01/2024", Time: "09:00", Title: "x"},
			wantErr: event.ErrInvalidDate,
		},
		{
			name:    "impossible date",
			input:   event.CreateEventInput{Date: "2024-02-30", Time: "09:00", Title: "x"},
			wantErr: event.ErrInvalidDate,
		},
		{
			name:    "unpadded time",
			input:   event.CreateEventInput{Date: "2024-07-01", Time: "9:00", Title: "x"},
			wantErr: event.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase()
			out, err := uc.Create(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !errors.Is(err, event.ErrValidation) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				list, _ := uc.List(ctx, event.ListEventsInput{Date: tt.input.Date})
				if len(list.Events) != 0 {
					t.Errorf("rejected event was persisted: %+v", list.Events)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Event.ID == "" {
				t.Error("expected id")
			}
			got := out.Event
			got.ID = ""
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCreateThenList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	inputs := []event.CreateEventInput{
		{Date: "2024-07-01", Time: "15:00", Title: "Third"},
		{Date: "2024-07-01", Time: "08:00", Title: "First"},
		{Date: "2024-07-02", Time: "09:00", Title: "Elsewhere"},
		{Date: "2024-07-01", Time: "12:30", Title: "Second"},
	}
	for _, in := range inputs {
		if _, err := uc.Create(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := uc.List(ctx, event.ListEventsInput{Date: "2024-07-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if len(out.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(out.Events))
	}
	for i, title := range want {
		if out.Events[i].Title != title {
			t.Errorf("position %d: expected %s, got %s", i, title, out.Events[i].Title)
		}
	}
}

func TestList_MalformedDate(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(repo, &mockLogger{})

	for _, date := range []string{"", "yesterday", "2024-13-01", "2024-7-1"} {
		out, err := uc.List(context.Background(), event.ListEventsInput{Date: date})
		if err != nil {
			t.Fatalf("List(%q): unexpected error %v", date, err)
		}
		if out.Events == nil || len(out.Events) != 0 {
			t.Errorf("List(%q): expected empty non-nil slice, got %#v", date, out.Events)
		}
	}
	if repo.listCalls != 0 {
		t.Errorf("malformed dates must not reach the repository, got %d calls", repo.listCalls)
	}
}

func TestList_NeverNil(t *testing.T) {
	uc := usecase.New(&mockRepo{}, &mockLogger{})
	out, err := uc.List(context.Background(), event.ListEventsInput{Date: "2024-07-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Events == nil {
		t.Error("expected empty non-nil slice")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.Create(ctx, event.CreateEventInput{Date: "2024-07-01", Time: "10:00", Title: "Dentist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Remove(ctx, created.Event.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Removed {
		t.Error("expected Removed=true")
	}

	list, _ := uc.List(ctx, event.ListEventsInput{Date: "2024-07-01"})
	for _, e := range list.Events {
		if e.ID == created.Event.ID {
			t.Fatal("removed event still listed")
		}
	}

	for _, id := range []string{created.Event.ID, "does-not-exist", "  "} {
		out, err = uc.Remove(ctx, id)
		if err != nil {
			t.Fatalf("Remove(%q): expected silent no-op, got %v", id, err)
		}
		if out.Removed {
			t.Errorf("Remove(%q): expected Removed=false", id)
		}
	}
}

func TestStatsByMonth(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	for _, in := range []event.CreateEventInput{
		{Date: "2024-07-01", Time: "09:00", Title: "a"},
		{Date: "2024-07-01", Time: "10:00", Title: "b"},
		{Date: "2024-07-31", Time: "11:00", Title: "c"},
		{Date: "2024-08-01", Time: "12:00", Title: "d"},
	} {
		if _, err := uc.Create(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := uc.StatsByMonth(ctx, event.StatsByMonthInput{Year: 2024, Month: time.July})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"2024-07-01": 2, "2024-07-31": 1}
	if len(out.Counts) != len(want) {
		t.Fatalf("expected %v, got %v", want, out.Counts)
	}
	for d, n := range want {
		if out.Counts[d] != n {
			t.Errorf("%s: expected %d, got %d", d, n, out.Counts[d])
		}
	}
}

func TestStatsByMonth_InvalidMonth(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(repo, &mockLogger{})

	for _, m := range []time.Month{0, 13, -1} {
		out, err := uc.StatsByMonth(context.Background(), event.StatsByMonthInput{Year: 2024, Month: m})
		if err != nil {
			t.Fatalf("month %d: unexpected error %v", m, err)
		}
		if len(out.Counts) != 0 || out.Counts == nil {
			t.Errorf("month %d: expected empty map, got %#v", m, out.Counts)
		}
	}
	if repo.statCalls != 0 {
		t.Errorf("invalid months must not reach the repository")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	uc.Create(ctx, event.CreateEventInput{Date: "2024-07-01", Time: "09:00", Title: "a"})
	if err := uc.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ := uc.List(ctx, event.ListEventsInput{Date: "2024-07-01"})
	if len(out.Events) != 0 {
		t.Errorf("expected no events after clear, got %d", len(out.Events))
	}
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockRepo{fail: true}, &mockLogger{})

	if _, err := uc.List(ctx, event.ListEventsInput{Date: "2024-07-01"}); !errors.Is(err, errBackend) {
		t.Errorf("List: expected backend error, got %v", err)
	}
	if _, err := uc.Create(ctx, event.CreateEventInput{Date: "2024-07-01", Time: "09:00", Title: "x"}); !errors.Is(err, errBackend) {
		t.Errorf("Create: expected backend error, got %v", err)
	}
	if _, err := uc.Remove(ctx, "1"); !errors.Is(err, errBackend) {
		t.Errorf("Remove: expected backend error, got %v", err)
	}
	if _, err := uc.StatsByMonth(ctx, event.StatsByMonthInput{Year: 2024, Month: time.July}); !errors.Is(err, errBackend) {
		t.Errorf("StatsByMonth: expected backend error, got %v", err)
	}
	if err := uc.Clear(ctx); !errors.Is(err, errBackend) {
		t.Errorf("Clear: expected backend error, got %v", err)
	}
}
