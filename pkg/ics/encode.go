// Package ics renders calendar events as an iCalendar (RFC 5545) feed.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// floatingLayout is a DATE-TIME without zone: the event happens at that wall
// clock time wherever the reader is.
const floatingLayout = "20060102T150405"

// ContentType is the MIME type of an encoded calendar.
const ContentType = "text/calendar; charset=utf-8"

// Event is the minimal shape the encoder needs.
type Event struct {
	UID     string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Summary string
}

// Options tunes the generated feed.
type Options struct {
	ProductID string
	Name      string
	Duration  time.Duration // zero emits events without DTEND
	Now       time.Time     // DTSTAMP; zero means time.Now
}

// Encode serialises events into one VCALENDAR. Events whose date or time
// cannot be parsed are rejected.
func Encode(events []Event, opts Options) (string, error) {
	if opts.ProductID == "" {
		opts.ProductID = "-//calendar-schedule//EN"
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(opts.ProductID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, e := range events {
		start, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
		if err != nil {
			return "", fmt.Errorf("ics: event %s: %w", e.UID, err)
		}

		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(opts.Now)
		ev.SetSummary(e.Summary)
		ev.SetProperty(ical.ComponentPropertyDtStart, start.Format(floatingLayout))
		if opts.Duration > 0 {
			ev.SetProperty(ical.ComponentPropertyDtEnd, start.Add(opts.Duration).Format(floatingLayout))
		}
	}

	return cal.Serialize(), nil
}
