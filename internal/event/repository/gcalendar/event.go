package gcalendar

import (
	"context"
	"fmt"
	"time"

	"calendar-schedule/internal/event"
	repo "calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/datemath"
	"calendar-schedule/pkg/gcalendar"
)

// ClearEvents sweeps this window.
var (
	clearFrom = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	clearTo   = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// ListEvents returns the events starting on opt.Date ordered by time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	day, err := datemath.ParseDate(opt.Date, r.dates.Location())
	if err != nil {
		return []model.Event{}, nil
	}

	items, err := r.list(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToList, event.ErrTransport)
	}

	out := make([]model.Event, 0, len(items))
	for _, e := range items {
		if e.Date == opt.Date {
			out = append(out, e)
		}
	}
	repo.SortByTime(out)
	return out, nil
}

// CreateEvent inserts a timed event of the configured duration.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	start, err := r.dates.At(opt.Date, opt.Time)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %w", event.ErrValidation, err)
	}

	created, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: r.calendarID,
		Summary:    opt.Title,
		StartTime:  start,
		EndTime:    start.Add(r.duration),
		Timezone:   r.timezone(),
		Private:    map[string]string{SourceKey: SourceValue},
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %w", repo.ErrFailedToInsert, event.ErrTransport)
	}

	return model.Event{
		ID:    created.ID,
		Date:  opt.Date,
		Time:  opt.Time,
		Title: opt.Title,
	}, nil
}

// DeleteEvent removes the Google event with id.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	removed, err := r.client.DeleteEvent(ctx, r.calendarID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return false, fmt.Errorf("%w: %w", repo.ErrFailedToDelete, event.ErrTransport)
	}
	return removed, nil
}

// StatsByMonth counts events per start day inside the month.
func (r *implRepository) StatsByMonth(ctx context.Context, opt repo.StatsByMonthOptions) (map[string]int, error) {
	first := time.Date(opt.Year, opt.Month, 1, 0, 0, 0, 0, r.dates.Location())
	items, err := r.list(ctx, first, first.AddDate(0, 1, 0))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("StatsByMonth"), err)
		return nil, fmt.Errorf("%w: %w", repo.ErrFailedToCount, event.ErrTransport)
	}

	lo, hi := datemath.MonthBounds(opt.Year, opt.Month)
	counts := make(map[string]int)
	for _, e := range items {
		if e.Date >= lo && e.Date <= hi {
			counts[e.Date]++
		}
	}
	return counts, nil
}

// ClearEvents deletes every event this backend created, all-day ones
// included.
func (r *implRepository) ClearEvents(ctx context.Context) error {
	items, err := r.fetch(ctx, clearFrom, clearTo)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearEvents"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToClear, event.ErrTransport)
	}

	for _, e := range items {
		if _, err := r.client.DeleteEvent(ctx, r.calendarID, e.ID); err != nil {
			r.l.Errorf(ctx, "%s: id=%s: %v", r.dsn("ClearEvents"), e.ID, err)
			return fmt.Errorf("%w: %w", repo.ErrFailedToClear, event.ErrTransport)
		}
	}
	return nil
}

// fetch returns every owned Google event in [from, to).
func (r *implRepository) fetch(ctx context.Context, from, to time.Time) ([]gcalendar.Event, error) {
	return r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:      r.calendarID,
		TimeMin:         from,
		TimeMax:         to,
		PrivateProperty: SourceKey + "=" + SourceValue,
	})
}

// list fetches owned, timed events in [from, to) as domain events.
func (r *implRepository) list(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	items, err := r.fetch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	loc := r.dates.Location()
	out := make([]model.Event, 0, len(items))
	for _, it := range items {
		if it.AllDay || it.StartTime.IsZero() {
			continue
		}
		start := it.StartTime.In(loc)
		out = append(out, model.Event{
			ID:    it.ID,
			Date:  datemath.FormatDate(start),
			Time:  start.Format(datemath.TimeLayout),
			Title: it.Summary,
		})
	}
	return out, nil
}

// timezone is the IANA name sent with new events. Local has no portable
// name, so the offset embedded in the RFC3339 start is used instead.
func (r *implRepository) timezone() string {
	if name := r.dates.Location().String(); name != "Local" {
		return name
	}
	return ""
}
