package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if len(req.Private) > 0 {
		ev.ExtendedProperties = &calendar.EventExtendedProperties{Private: req.Private}
	}

	created, err := c.service.Events.Insert(calendarOrPrimary(req.CalendarID), ev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := toEvent(created, req.StartTime.Location())
	out.StartTime = req.StartTime
	out.EndTime = req.EndTime
	return &out, nil
}

// ListEvents returns single (expanded) events starting inside [TimeMin, TimeMax),
// ordered by start time. Every page is fetched.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarOrPrimary(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.PrivateProperty != "" {
		call = call.PrivateExtendedProperty(req.PrivateProperty)
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	loc := req.TimeMin.Location()
	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == "cancelled" {
				continue
			}
			events = append(events, toEvent(item, loc))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event. It reports false when the event does not
// exist or was already deleted.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) (bool, error) {
	err := c.service.Events.Delete(calendarOrPrimary(calendarID), eventID).Context(ctx).Do()
	if err == nil {
		return true, nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return false, nil
	}
	return false, fmt.Errorf("failed to delete calendar event: %w", err)
}

func toEvent(item *calendar.Event, loc *time.Location) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
	}
	if item.ExtendedProperties != nil {
		ev.Private = item.ExtendedProperties.Private
	}
	ev.StartTime, ev.AllDay = parseEventTime(item.Start, loc)
	ev.EndTime, _ = parseEventTime(item.End, loc)
	return ev
}

// parseEventTime reads either a timed or an all-day boundary. Timed values
// are converted into loc so the caller sees local wall-clock times.
func parseEventTime(edt *calendar.EventDateTime, loc *time.Location) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t.In(loc), false
		}
	}
	if edt.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", edt.Date, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
