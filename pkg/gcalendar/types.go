package gcalendar

import "time"

// PrimaryCalendar is the calendar used when none is given.
const PrimaryCalendar = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
	// Private extended properties, visible only to this application.
	Private map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Private     map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	// PrivateProperty filters on an extended property, formatted "key=value".
	PrivateProperty string
	// MaxResults caps the page size; all pages are always fetched.
	MaxResults int64
}
