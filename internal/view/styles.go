package view

import "github.com/charmbracelet/lipgloss"

const cellWidth = 5

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")).Width(cellWidth).Align(lipgloss.Center)
	dayStyle       = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	outsideStyle   = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("8"))
	todayStyle     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("2"))
	selectedStyle  = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	dotsStyle      = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("3"))

	scheduleHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	timeStyle           = lipgloss.NewStyle().Bold(true)
	idStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)
