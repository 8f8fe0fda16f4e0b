package calendar

import "context"

type UseCase interface {
	// Load builds the grid, the per-day counts and the selected day's
	// schedule concurrently and returns once all three are ready.
	Load(ctx context.Context, input LoadInput) (MonthView, error)
	// Export collects every event of a month.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
