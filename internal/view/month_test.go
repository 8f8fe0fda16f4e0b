package view

import (
	"strings"
	"testing"
	"time"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/calgrid"
	"calendar-schedule/pkg/datemath"
)

func TestDots(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, ""},
		{-1, ""},
		{1, "•"},
		{3, "•••"},
		{7, "•••"},
	}
	for _, tt := range tests {
		if got := Dots(tt.count); got != tt.want {
			t.Errorf("Dots(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func julyView() calendar.MonthView {
	cells := calgrid.Build(2024, time.July)
	v := calendar.MonthView{
		Year:     2024,
		Month:    time.July,
		Weekdays: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		Cells:    make([]calendar.DayCell, len(cells)),
		Selected: "2024-07-04",
		Events: []model.Event{
			{ID: "a", Date: "2024-07-04", Time: "08:00", Title: "Parade"},
			{ID: "b", Date: "2024-07-04", Time: "21:00", Title: "Fireworks"},
		},
	}
	for i, c := range cells {
		iso := datemath.FormatDate(c.Date)
		v.Cells[i] = calendar.DayCell{Date: iso, Day: c.Date.Day(), InMonth: c.InMonth, IsSelected: iso == v.Selected}
		if iso == "2024-07-04" {
			v.Cells[i].EventCount = 5
		}
	}
	return v
}

func TestMonth(t *testing.T) {
	out := Month(julyView())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// title + header + 6 weeks of (days, dots)
	if len(lines) != 2+calgrid.Weeks*2 {
		t.Fatalf("expected %d lines, got %d:\n%s", 2+calgrid.Weeks*2, len(lines), out)
	}
	if !strings.Contains(lines[0], "July 2024") {
		t.Errorf("missing title: %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Su") {
		t.Errorf("expected Sunday first header, got %q", lines[1])
	}
	// First week starts with June 30 then July 1..6.
	if fields := strings.Fields(lines[2]); len(fields) != 7 || fields[0] != "30" || fields[1] != "1" {
		t.Errorf("unexpected first week: %q", lines[2])
	}
	if !strings.Contains(lines[3], "•••") || strings.Contains(lines[3], "••••") {
		t.Errorf("expected dots capped at 3, got %q", lines[3])
	}
}

func TestSchedule(t *testing.T) {
	v := julyView()
	out := Schedule(v.Selected, v.Events)
	if !strings.Contains(out, "Thursday, July 4 2024") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Index(out, "Parade") > strings.Index(out, "Fireworks") {
		t.Errorf("events out of order:\n%s", out)
	}

	empty := Schedule("2024-07-05", nil)
	if !strings.Contains(empty, "No events") {
		t.Errorf("expected empty marker:\n%s", empty)
	}
}

func TestRender(t *testing.T) {
	out := Render(julyView())
	if !strings.Contains(out, "July 2024") || !strings.Contains(out, "Fireworks") {
		t.Errorf("expected grid and schedule:\n%s", out)
	}
}
