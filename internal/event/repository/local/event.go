package local

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"calendar-schedule/internal/event"
	repo "calendar-schedule/internal/event/repository"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/datemath"
)

// ListEvents returns the events on opt.Date ordered by time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	all := r.read(ctx)
	r.mu.Unlock()

	items := make([]model.Event, 0)
	for _, e := range all {
		if e.Date == opt.Date {
			items = append(items, e)
		}
	}
	repo.SortByTime(items)
	return items, nil
}

// CreateEvent appends a new event and persists the collection.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	if err := r.wait(ctx); err != nil {
		return model.Event{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := model.Event{
		ID:    r.newID(),
		Date:  opt.Date,
		Time:  opt.Time,
		Title: opt.Title,
	}
	all := append(r.read(ctx), item)
	if err := r.write(all); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %w", repo.ErrFailedToInsert, event.ErrTransport)
	}
	return item, nil
}

// DeleteEvent drops the event with id. Unknown ids are a no-op.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	if err := r.wait(ctx); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.read(ctx)
	next := make([]model.Event, 0, len(all))
	for _, e := range all {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(all) {
		return false, nil
	}
	if err := r.write(next); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return false, fmt.Errorf("%w: %w", repo.ErrFailedToDelete, event.ErrTransport)
	}
	return true, nil
}

// StatsByMonth counts events per day inside the month.
func (r *implRepository) StatsByMonth(ctx context.Context, opt repo.StatsByMonthOptions) (map[string]int, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	all := r.read(ctx)
	r.mu.Unlock()

	first, last := datemath.MonthBounds(opt.Year, opt.Month)
	counts := make(map[string]int)
	for _, e := range all {
		// ISO dates compare correctly as strings once the shape is checked.
		if !datemath.IsDate(e.Date) {
			continue
		}
		if e.Date >= first && e.Date <= last {
			counts[e.Date]++
		}
	}
	return counts, nil
}

// ClearEvents removes the stored collection.
func (r *implRepository) ClearEvents(ctx context.Context) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(r.key); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearEvents"), err)
		return fmt.Errorf("%w: %w", repo.ErrFailedToClear, event.ErrTransport)
	}
	return nil
}

// read loads the collection. Missing or unreadable data is an empty collection.
func (r *implRepository) read(ctx context.Context) []model.Event {
	raw, ok, err := r.store.Get(r.key)
	if err != nil {
		r.l.Warnf(ctx, "%s: treating store as empty: %v", r.dsn("read"), err)
		return nil
	}
	if !ok || len(raw) == 0 {
		return nil
	}

	var all []model.Event
	if err := json.Unmarshal(raw, &all); err != nil {
		r.l.Warnf(ctx, "%s: corrupt %s, treating as empty: %v", r.dsn("read"), r.key, err)
		return nil
	}
	return all
}

func (r *implRepository) write(all []model.Event) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return err
	}
	return r.store.Set(r.key, raw)
}

// wait applies the configured artificial latency.
func (r *implRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
