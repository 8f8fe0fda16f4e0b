package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser turns user-facing date strings into local calendar dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "Local" selects the process timezone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the start of the current day in the parser's timezone.
func (p *Parser) Today() time.Time {
	return p.StartOfDay(time.Now())
}

// Parse accepts an ISO date or a relative expression ("today", "tomorrow",
// "yesterday", "in N days|weeks|months", "next <weekday>") and returns the
// start of that day. baseTime anchors the relative forms.
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(value, "in ") {
		return p.parseInDuration(value, baseTime)
	}
	if strings.HasPrefix(value, "next ") {
		return p.parseNextWeekday(value, baseTime)
	}

	return ParseDate(value, p.location)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(value string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", value)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(value string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(value, "next ")

	var target time.Weekday = -1
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == dayName {
			target = d
			break
		}
	}
	if target < 0 {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At combines an ISO date and an HH:MM time into an instant in the parser's timezone.
func (p *Parser) At(date, clock string) (time.Time, error) {
	if !IsTime(clock) {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}
