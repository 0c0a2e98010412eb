// Package focus renders the focus-timer screen.
package focus

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/timer"
	"tableflip.dev/vireo/pkg/timeutil"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

var encouragements = []string{
	"Showing up is the whole game.",
	"This block of time is yours.",
	"Small sessions stack up.",
	"Done beats perfect.",
}

// Model is the focus view. The timer keeps counting while other tabs are
// active; the root forwards the heartbeat to every view.
type Model struct {
	service *app.Service
	theme   theme.Theme

	timer  *timer.Timer
	cursor int
	logErr error

	width  int
	height int
}

// New constructs the focus view. Completed sessions are logged through the
// service as a side effect of the timer reaching zero.
func New(s *app.Service, th theme.Theme) *Model {
	m := &Model{
		service: s,
		theme:   th,
	}
	m.timer = timer.New(func(rec document.TimerSessionRecord) {
		m.logErr = s.LogTimerSession(rec)
	})
	return m
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize stores the available viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch v := msg.(type) {
	case events.TickMsg:
		before := m.timer.State()
		m.timer.Tick()
		if before == timer.StateRunning && m.timer.State() == timer.StateIdle {
			if m.logErr != nil {
				return m, events.Status(m.logErr.Error())
			}
			return m, events.Status("Session complete. That counts.")
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(v)
	}
	return m, nil
}

func (m *Model) updateKey(key tea.KeyMsg) (ui.Component, tea.Cmd) {
	presets := timer.Presets()

	switch key.String() {
	case "up", "k":
		if m.timer.State() == timer.StateIdle && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.timer.State() == timer.StateIdle && m.cursor < len(presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.timer.State() == timer.StateIdle {
			m.logErr = nil
			m.timer.Start(presets[m.cursor])
			return m, events.Status(fmt.Sprintf("%s started.", presets[m.cursor].Name))
		}
	case "p":
		switch m.timer.State() {
		case timer.StateRunning:
			m.timer.Pause()
			return m, events.Status("Paused.")
		case timer.StatePaused:
			m.timer.Resume()
			return m, events.Status("Back at it.")
		}
	case "r", "esc":
		if m.timer.State() != timer.StateIdle {
			m.timer.Reset()
			return m, events.Status("Session discarded. Nothing logged.")
		}
	}
	return m, nil
}

// View renders the focus screen.
func (m *Model) View() string {
	var b strings.Builder

	switch m.timer.State() {
	case timer.StateIdle:
		b.WriteString(m.theme.Subtitle.Render("Pick a session"))
		b.WriteString("\n")
		for i, p := range timer.Presets() {
			marker := "  "
			style := m.theme.Body
			if i == m.cursor {
				marker = "→ "
				style = m.theme.Selected
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%s %-11s %3d min", marker, p.Icon, p.Name, p.Duration)))
			b.WriteString("\n")
		}
	default:
		p := m.timer.Preset()
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%s %s", p.Icon, p.Name)))
		b.WriteString("\n\n")
		clock := timeutil.FormatClock(m.timer.Remaining())
		b.WriteString(m.theme.Title.Render("   " + clock))
		if m.timer.State() == timer.StatePaused {
			b.WriteString(m.theme.Faint.Render("  paused"))
		}
		b.WriteString("\n\n")
		b.WriteString(m.theme.Faint.Render("  " + encouragements[p.Duration%len(encouragements)]))
		b.WriteString("\n")
	}

	sessions := m.service.Document().TimerSessions
	if len(sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Recent"))
		b.WriteString("\n")
		start := len(sessions) - 5
		if start < 0 {
			start = 0
		}
		for i := len(sessions) - 1; i >= start; i-- {
			s := sessions[i]
			b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  %s  %s, %d min",
				s.CompletedAt.Local().Format("Jan _2 15:04"), s.Type, s.Duration)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
