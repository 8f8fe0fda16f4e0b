package remote

import (
	"context"

	repo "calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	events, err := r.client.ListEvents(ctx, opt.Date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	// The server already orders by time; sorting again keeps the contract
	// independent of the peer's implementation.
	repo.SortByTime(events)
	return events, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	ev, err := r.client.CreateEvent(ctx, CreateEventRequest{
		Date:  opt.Date,
		Time:  opt.Time,
		Title: opt.Title,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, err
	}
	return ev, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	removed, err := r.client.DeleteEvent(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return false, err
	}
	return removed, nil
}

func (r *implRepository) StatsByMonth(ctx context.Context, opt repo.StatsByMonthOptions) (map[string]int, error) {
	stats, err := r.client.StatsByMonth(ctx, opt.Year, opt.Month)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("StatsByMonth"), err)
		return nil, err
	}
	if stats == nil {
		stats = map[string]int{}
	}
	return stats, nil
}

func (r *implRepository) ClearEvents(ctx context.Context) error {
	if err := r.client.ClearEvents(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearEvents"), err)
		return err
	}
	return nil
}
