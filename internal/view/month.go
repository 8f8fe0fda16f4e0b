// Package view renders the calendar for a terminal.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/model"
	"calendar-schedule/pkg/calgrid"
	"calendar-schedule/pkg/datemath"
)

// MaxDots caps the per-day event marker.
const MaxDots = 3

// Dots is the event marker drawn under a day: one dot per event, at most MaxDots.
func Dots(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat("•", min(count, MaxDots))
}

// Month draws the title, the weekday header and six weeks of days, each day
// followed by a row of event dots.
func Month(v calendar.MonthView) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", v.Month, v.Year)
	b.WriteString(lipgloss.PlaceHorizontal(cellWidth*calgrid.DaysPerWeek, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n")

	headers := make([]string, len(v.Weekdays))
	for i, d := range v.Weekdays {
		headers[i] = dayHeaderStyle.Render(d.String()[:2])
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for w := 0; w < calgrid.Weeks; w++ {
		week := v.Cells[w*calgrid.DaysPerWeek : (w+1)*calgrid.DaysPerWeek]
		days := make([]string, len(week))
		dots := make([]string, len(week))
		for i, c := range week {
			days[i] = cellStyle(c).Render(strconv.Itoa(c.Day))
			dots[i] = dotsStyle.Render(Dots(c.EventCount))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, days...))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, dots...))
		b.WriteString("\n")
	}
	return b.String()
}

func cellStyle(c calendar.DayCell) lipgloss.Style {
	switch {
	case c.IsSelected:
		return selectedStyle
	case c.IsToday:
		return todayStyle
	case !c.InMonth:
		return outsideStyle
	default:
		return dayStyle
	}
}

// Schedule lists one day's events in time order.
func Schedule(date string, events []model.Event) string {
	var b strings.Builder

	header := date
	if d, err := datemath.ParseDate(date, time.Local); err == nil {
		header = d.Format("Monday, January 2 2006")
	}
	b.WriteString(scheduleHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString(emptyStyle.Render("  No events"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range events {
		fmt.Fprintf(&b, "  %s  %s  %s\n", timeStyle.Render(e.Time), e.Title, idStyle.Render(e.ID))
	}
	return b.String()
}

// Render is the full screen: month grid above the selected day's schedule.
func Render(v calendar.MonthView) string {
	return Month(v) + "\n" + Schedule(v.Selected, v.Events)
}
