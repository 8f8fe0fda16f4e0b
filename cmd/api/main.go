package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-schedule/config"
	_ "calendar-schedule/docs" // Swagger docs
	"calendar-schedule/internal/event/repository/factory"
	"calendar-schedule/internal/httpserver"
	"calendar-schedule/pkg/log"
)

// @title       Calendar Schedule API
// @description Month grid, per-day schedules and event storage over pluggable backends.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Schedule API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event store
	if cfg.Storage.Backend == config.BackendRemote {
		logger.Warn(ctx, "The remote backend points the API at another instance of itself")
	}
	repo, err := factory.New(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize event store: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		EventRepository: repo,
		WeekStart:       cfg.Calendar.WeekStart,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
