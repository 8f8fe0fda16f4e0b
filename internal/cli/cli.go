// Package cli implements the calendar command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/event"
	"calendar-schedule/pkg/datemath"
)

// Deps is what the commands run against.
type Deps struct {
	Events   event.UseCase
	Calendar calendar.UseCase
	Dates    *datemath.Parser
	Now      func() time.Time
	In       io.Reader // nil when stdin is not a terminal; prompts are refused
	Out      io.Writer
	Err      io.Writer
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, args []string, d Deps) int {
	if d.Now == nil {
		d.Now = time.Now
	}
	if len(args) == 0 {
		return runShow(ctx, nil, d)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "show", "month", "m":
		return runShow(ctx, cmdArgs, d)
	case "list", "ls", "l":
		return runList(ctx, cmdArgs, d)
	case "add", "a":
		return runAdd(ctx, cmdArgs, d)
	case "rm", "delete", "del":
		return runRemove(ctx, cmdArgs, d)
	case "clear":
		return runClear(ctx, cmdArgs, d)
	case "export":
		return runExport(ctx, cmdArgs, d)
	case "tui", "ui":
		return runTUI(ctx, d)
	case "help", "-h", "--help":
		printUsage(d.Out)
		return 0
	default:
		fmt.Fprintf(d.Err, "Unknown command: %s\n", command)
		printUsage(d.Err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `calendar - month view and daily schedule

Usage: calendar [command] [arguments]

Commands:
  show, m     Show a month with event dots and the selected day
              calendar show                     # current month, today selected
              calendar show 2024-07 --select 2024-07-04
              calendar show --prev | --next     # neighbour of the current month

  list, ls    List a day's events
              calendar list [DATE]              # DATE defaults to today

  add, a      Add an event
              calendar add DATE [HH:MM] Title words...
              HH:MM defaults to now rounded up to the quarter hour

  rm, delete  Delete an event by id
              calendar rm <event-id>

  clear       Delete every event (asks unless --yes)

  export      Print a month as iCalendar
              calendar export [YYYY-MM]

  tui, ui     Browse months interactively (h/l day, k/j week, H/L month, t today)

DATE is YYYY-MM-DD or today, tomorrow, yesterday, "in N days", "next friday".
Running calendar without arguments shows the current month.`)
}
