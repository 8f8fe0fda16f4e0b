package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"calendar-schedule/config"
	calendarUC "calendar-schedule/internal/calendar/usecase"
	"calendar-schedule/internal/cli"
	"calendar-schedule/internal/event/repository/factory"
	eventUC "calendar-schedule/internal/event/usecase"
	"calendar-schedule/pkg/datemath"
	"calendar-schedule/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		return 1
	}

	// Logs go to stderr so command output stays clean.
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Output:       log.OutputStderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := factory.New(ctx, cfg.Storage, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to open event store:", err)
		return 1
	}

	dates, err := datemath.NewParser("Local")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load local timezone:", err)
		return 1
	}

	events := eventUC.New(repo, logger)
	deps := cli.Deps{
		Events:   events,
		Calendar: calendarUC.New(events, cfg.Calendar.WeekStart, logger),
		Dates:    dates,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		deps.In = os.Stdin
	}
	return cli.Run(ctx, os.Args[1:], deps)
}
