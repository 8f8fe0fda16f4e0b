package http

import (
	"fmt"
	"time"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/ics"
	"calendar-schedule/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Date string `form:"date"`
}

func (r listReq) toInput() event.ListEventsInput {
	return event.ListEventsInput{Date: r.Date}
}

// ---

type createReq struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title"`
}

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Date:  r.Date,
		Time:  r.Time,
		Title: r.Title,
	}
}

// ---

type statsReq struct {
	Year  int `form:"year"  binding:"required"`
	Month int `form:"month"`
}

func (r statsReq) toInput() event.StatsByMonthInput {
	return event.StatsByMonthInput{Year: r.Year, Month: time.Month(r.Month)}
}

// ---

type calendarReq struct {
	Month    string `form:"month"`    // YYYY-MM, defaults to the current month
	Selected string `form:"selected"` // YYYY-MM-DD, defaults to today
}

type exportReq struct {
	Month string `form:"month" binding:"required"`
}

// --- Response DTOs ---

type eventResp struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{ID: e.ID, Date: e.Date, Time: e.Time, Title: e.Title}
}

func newEventResps(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	return listResp{Events: newEventResps(out.Events)}
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out event.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type removeResp struct {
	Removed bool `json:"removed"`
}

type statsResp struct {
	Stats map[string]int `json:"stats"`
}

func (h *handler) newStatsResp(out event.StatsByMonthOutput) statsResp {
	stats := out.Counts
	if stats == nil {
		stats = map[string]int{}
	}
	return statsResp{Stats: stats}
}

type cellResp struct {
	Date       string `json:"date"`
	Day        int    `json:"day"`
	InMonth    bool   `json:"in_month"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	EventCount int    `json:"event_count"`
}

type calendarResp struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Label     string        `json:"label"`
	Today     response.Date `json:"today"`
	WeekStart string        `json:"week_start"`
	Weekdays  []string      `json:"weekdays"`
	Cells     []cellResp    `json:"cells"`
	Selected  string        `json:"selected"`
	Events    []eventResp   `json:"events"`
}

func (h *handler) newCalendarResp(v calendar.MonthView, today time.Time) calendarResp {
	weekdays := make([]string, len(v.Weekdays))
	for i, d := range v.Weekdays {
		weekdays[i] = d.String()[:3]
	}

	cells := make([]cellResp, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = cellResp{
			Date:       c.Date,
			Day:        c.Day,
			InMonth:    c.InMonth,
			IsToday:    c.IsToday,
			IsSelected: c.IsSelected,
			EventCount: c.EventCount,
		}
	}

	return calendarResp{
		Year:      v.Year,
		Month:     int(v.Month),
		Label:     fmt.Sprintf("%s %d", v.Month, v.Year),
		Today:     response.Date(today),
		WeekStart: v.WeekStart.String(),
		Weekdays:  weekdays,
		Cells:     cells,
		Selected:  v.Selected,
		Events:    newEventResps(v.Events),
	}
}

func toICSEvents(events []model.Event) []ics.Event {
	out := make([]ics.Event, len(events))
	for i, e := range events {
		out[i] = ics.Event{UID: e.ID, Date: e.Date, Time: e.Time, Summary: e.Title}
	}
	return out
}
