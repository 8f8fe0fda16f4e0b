package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/internal/view"
	"calendar-schedule/pkg/datemath"
	"calendar-schedule/pkg/ics"
)

func runShow(ctx context.Context, args []string, d Deps) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(d.Err)
	selectFlag := fs.String("select", "", "Day to select")
	prev := fs.Bool("prev", false, "Show the previous month")
	next := fs.Bool("next", false, "Show the next month")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 1
	}

	today := d.Now()
	state := calendar.NewViewState(today)

	if len(positional) > 0 {
		month := positional[0]
		year, m, err := datemath.ParseMonth(month)
		if err != nil {
			fmt.Fprintf(d.Err, "Error: %v\n", err)
			return 1
		}
		state = state.ShowMonth(year, m)
	}
	switch {
	case *prev:
		state = state.Prev()
	case *next:
		state = state.Next()
	}
	if *selectFlag != "" {
		day, err := d.Dates.Parse(*selectFlag, today)
		if err != nil {
			fmt.Fprintf(d.Err, "Error: %v\n", err)
			return 1
		}
		state = state.Select(day)
	}

	v, err := d.Calendar.Load(ctx, calendar.LoadInput{State: state, Today: today})
	if err != nil {
		fmt.Fprintf(d.Err, "Error loading calendar: %v\n", err)
		return 1
	}

	fmt.Fprint(d.Out, view.Render(v))
	return 0
}

func runList(ctx context.Context, args []string, d Deps) int {
	date := "today"
	if len(args) > 0 {
		date = strings.Join(args, " ")
	}
	iso, err := resolveDate(date, d)
	if err != nil {
		fmt.Fprintf(d.Err, "Error: %v\n", err)
		return 1
	}

	out, err := d.Events.List(ctx, event.ListEventsInput{Date: iso})
	if err != nil {
		fmt.Fprintf(d.Err, "Error loading events: %v\n", err)
		return 1
	}

	fmt.Fprint(d.Out, view.Schedule(iso, out.Events))
	return 0
}

func runAdd(ctx context.Context, args []string, d Deps) int {
	if len(args) < 2 {
		fmt.Fprintln(d.Err, "Error: date and title required")
		fmt.Fprintln(d.Err, "Usage: calendar add DATE [HH:MM] Title words...")
		return 1
	}

	iso, err := resolveDate(args[0], d)
	if err != nil {
		fmt.Fprintf(d.Err, "Error: %v\n", err)
		return 1
	}

	// An argument starting with a digit is the time; otherwise the title
	// starts right after the date.
	at, titleArgs := datemath.NextQuarterHour(d.Now()).Format(datemath.TimeLayout), args[1:]
	if startsWithDigit(args[1]) {
		at, titleArgs = args[1], args[2:]
	}

	out, err := d.Events.Create(ctx, event.CreateEventInput{
		Date:  iso,
		Time:  at,
		Title: strings.Join(titleArgs, " "),
	})
	if err != nil {
		if errors.Is(err, event.ErrValidation) {
			fmt.Fprintf(d.Err, "Invalid event: %v\n", err)
		} else {
			fmt.Fprintf(d.Err, "Error adding event: %v\n", err)
		}
		return 1
	}

	fmt.Fprintf(d.Out, "Added: %s %s %s\n", out.Event.Date, out.Event.Time, out.Event.Title)
	fmt.Fprintf(d.Out, "ID: %s\n", out.Event.ID)
	return 0
}

func runRemove(ctx context.Context, args []string, d Deps) int {
	if len(args) != 1 {
		fmt.Fprintln(d.Err, "Error: event id required")
		fmt.Fprintln(d.Err, "Usage: calendar rm <event-id>")
		return 1
	}

	out, err := d.Events.Remove(ctx, args[0])
	if err != nil {
		fmt.Fprintf(d.Err, "Error deleting event: %v\n", err)
		return 1
	}
	if !out.Removed {
		fmt.Fprintf(d.Out, "No event with id %s\n", args[0])
		return 0
	}
	fmt.Fprintf(d.Out, "Deleted: %s\n", args[0])
	return 0
}

func runClear(ctx context.Context, args []string, d Deps) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(d.Err)
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	fs.BoolVar(yes, "y", false, "Do not ask for confirmation (shorthand)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if !*yes {
		if d.In == nil || !confirm(d, "Delete all events? [y/N] ") {
			fmt.Fprintln(d.Out, "Aborted")
			return 1
		}
	}

	if err := d.Events.Clear(ctx); err != nil {
		fmt.Fprintf(d.Err, "Error clearing events: %v\n", err)
		return 1
	}
	fmt.Fprintln(d.Out, "All events deleted")
	return 0
}

func runExport(ctx context.Context, args []string, d Deps) int {
	year, month := d.Now().Year(), d.Now().Month()
	if len(args) > 0 {
		var err error
		year, month, err = datemath.ParseMonth(args[0])
		if err != nil {
			fmt.Fprintf(d.Err, "Error: %v\n", err)
			return 1
		}
	}

	out, err := d.Calendar.Export(ctx, calendar.ExportInput{Year: year, Month: month})
	if err != nil {
		fmt.Fprintf(d.Err, "Error exporting events: %v\n", err)
		return 1
	}

	events := make([]ics.Event, len(out.Events))
	for i, e := range out.Events {
		events[i] = ics.Event{UID: e.ID, Date: e.Date, Time: e.Time, Summary: e.Title}
	}
	body, err := ics.Encode(events, ics.Options{Name: fmt.Sprintf("%s %d", month, year)})
	if err != nil {
		fmt.Fprintf(d.Err, "Error encoding calendar: %v\n", err)
		return 1
	}
	fmt.Fprint(d.Out, body)
	return 0
}

// parseInterspersed lets flags follow positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// resolveDate accepts ISO or relative dates and returns YYYY-MM-DD.
func resolveDate(value string, d Deps) (string, error) {
	day, err := d.Dates.Parse(value, d.Now())
	if err != nil {
		return "", err
	}
	return datemath.FormatDate(day), nil
}

func confirm(d Deps, prompt string) bool {
	fmt.Fprint(d.Out, prompt)
	answer, _ := bufio.NewReader(d.In).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
