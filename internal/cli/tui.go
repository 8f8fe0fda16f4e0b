package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-schedule/internal/tui"
)

func runTUI(ctx context.Context, d Deps) int {
	if d.In == nil {
		fmt.Fprintln(d.Err, "Error: tui needs an interactive terminal")
		return 1
	}

	p := tea.NewProgram(
		tui.New(ctx, d.Calendar, d.Now),
		tea.WithContext(ctx),
		tea.WithInput(d.In),
		tea.WithOutput(d.Out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(d.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}
