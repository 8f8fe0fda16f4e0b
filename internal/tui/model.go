// Package tui is the interactive month view.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calendar-schedule/internal/calendar"
	"calendar-schedule/internal/view"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

const hint = "[h/l: day] [k/j: week] [H/L: month] [t: today] [q: quit]"

// loadedMsg carries a finished Load for the state it was issued with.
type loadedMsg struct {
	state calendar.ViewState
	view  calendar.MonthView
	err   error
}

// Model drives a calendar.ViewState with the keyboard and reloads the month
// view after every move.
type Model struct {
	ctx    context.Context
	cal    calendar.UseCase
	now    func() time.Time
	state  calendar.ViewState
	view   calendar.MonthView
	loaded bool
	err    error
}

// New opens on today's month with today selected.
func New(ctx context.Context, cal calendar.UseCase, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		ctx:   ctx,
		cal:   cal,
		now:   now,
		state: calendar.NewViewState(now()),
	}
}

// State is the current view state.
func (m Model) State() calendar.ViewState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		v, err := m.cal.Load(m.ctx, calendar.LoadInput{State: state, Today: m.now()})
		return loadedMsg{state: state, view: v, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// A slower load for a state the user already moved away from.
		if !sameState(msg.state, m.state) {
			return m, nil
		}
		m.err = msg.err
		if msg.err == nil {
			m.view = msg.view
			m.loaded = true
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "h", "left":
		m.state = m.moveSelection(-1)
	case "l", "right":
		m.state = m.moveSelection(1)
	case "k", "up":
		m.state = m.moveSelection(-7)
	case "j", "down":
		m.state = m.moveSelection(7)
	case "H", "pgup":
		m.state = m.state.Prev()
	case "L", "pgdown":
		m.state = m.state.Next()
	case "t":
		m.state = m.state.Today(m.now())
	default:
		return m, nil
	}
	return m, m.load()
}

// moveSelection shifts the selected day and scrolls the grid when the
// selection leaves the displayed month.
func (m Model) moveSelection(days int) calendar.ViewState {
	next := m.state.Select(m.state.Selected.AddDate(0, 0, days))
	sel := next.Selected
	if sel.Year() != next.Month.Year() || sel.Month() != next.Month.Month() {
		next = next.ShowMonth(sel.Year(), sel.Month())
	}
	return next
}

func (m Model) View() string {
	var b strings.Builder
	if m.loaded {
		b.WriteString(view.Render(m.view))
	} else {
		b.WriteString("Loading...\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(hint))
	b.WriteString("\n")
	return b.String()
}

func sameState(a, b calendar.ViewState) bool {
	return a.Month.Equal(b.Month) && a.Selected.Equal(b.Selected)
}
