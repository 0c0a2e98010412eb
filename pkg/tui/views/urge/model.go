// Package urge renders the guided urge-surf wizard.
package urge

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
	"tableflip.dev/vireo/pkg/urgesurf"
)

var _ ui.Component = (*Model)(nil)

// Model walks the five wizard steps. The flow owns the draft; this model only
// translates keys into flow calls and renders the current step.
type Model struct {
	service *app.Service
	theme   theme.Theme

	flow     *urgesurf.Flow
	gen      int
	strategy int
	input    textinput.Model
	typing   bool

	width  int
	height int
}

// New constructs the urge-surf view.
func New(s *app.Service, th theme.Theme) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 200

	m := &Model{
		service: s,
		theme:   th,
		flow:    urgesurf.New(),
		input:   in,
	}
	// The breathe auto-advance runs through the Bubble Tea event loop, not a
	// raw timer, so the UI redraws when the step flips.
	m.flow.SetAfter(func(_ time.Duration, _ func()) {})
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
	case events.AdvanceMsg:
		// Navigation since the final breath makes the pending advance stale.
		if v.Gen == m.gen && m.flow.Step() == urgesurf.StepBreathe {
			m.flow.Forward()
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(v)
	}
	return m, nil
}

func (m *Model) updateKey(key tea.KeyMsg) (ui.Component, tea.Cmd) {
	if m.typing {
		return m.updateTyping(key)
	}

	if key.String() == "esc" {
		if m.flow.Back() {
			m.gen++
		}
		return m, nil
	}

	switch m.flow.Step() {
	case urgesurf.StepIntensity:
		switch key.String() {
		case "left", "h":
			m.flow.SetIntensity(m.flow.Intensity() - 1)
		case "right", "l":
			m.flow.SetIntensity(m.flow.Intensity() + 1)
		case "enter":
			m.flow.Forward()
		}
	case urgesurf.StepFeeling:
		if key.String() == "enter" {
			if m.flow.CanForward() {
				m.flow.Forward()
			}
			return m, nil
		}
		// Any other key starts typing the feeling.
		m.typing = true
		m.input.SetValue(m.flow.Feeling())
		cmd := m.input.Focus()
		return m, tea.Batch(cmd, func() tea.Msg { return tea.Msg(key) })
	case urgesurf.StepBreathe:
		switch key.String() {
		case " ", "space", "enter":
			m.flow.Breathe()
			if m.flow.Breaths() >= urgesurf.BreathTarget {
				m.gen++
				return m, events.Advance(urgesurf.AdvanceDelay, m.gen)
			}
		}
	case urgesurf.StepStrategy:
		strategies := m.strategies()
		switch key.String() {
		case "up", "k":
			if m.strategy > 0 {
				m.strategy--
			}
		case "down", "j":
			if m.strategy < len(strategies)-1 {
				m.strategy++
			}
		case "enter":
			if len(strategies) > 0 {
				m.flow.ChooseStrategy(strategies[m.strategy])
				m.flow.Forward()
			}
		}
	case urgesurf.StepReflection:
		switch key.String() {
		case "left", "h":
			m.flow.SetPostIntensity(m.flow.PostIntensity() - 1)
		case "right", "l":
			m.flow.SetPostIntensity(m.flow.PostIntensity() + 1)
		case "n":
			m.typing = true
			m.input.SetValue(m.flow.Reflection())
			return m, m.input.Focus()
		case "enter":
			return m.complete()
		}
	}
	return m, nil
}

func (m *Model) updateTyping(key tea.KeyMsg) (ui.Component, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.typing = false
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.typing = false
		m.input.Blur()
		if m.flow.Step() == urgesurf.StepFeeling {
			m.flow.SetFeeling(text)
			m.flow.Forward()
		} else {
			m.flow.SetReflection(text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if m.flow.Step() == urgesurf.StepFeeling {
		m.flow.SetFeeling(m.input.Value())
	}
	return m, cmd
}

func (m *Model) complete() (ui.Component, tea.Cmd) {
	before := m.flow.Intensity()
	rec, err := m.flow.Complete(m.service.Now())
	if err != nil {
		return m, events.Status(err.Error())
	}
	m.strategy = 0
	if err := m.service.LogUrgeSurf(rec); err != nil {
		return m, events.Status(err.Error())
	}
	if rec.PostIntensity < before {
		return m, events.Status(fmt.Sprintf("From %d down to %d. Saved.", before, rec.PostIntensity))
	}
	return m, events.Status("You stayed with it. Saved.")
}

func (m *Model) strategies() []string {
	return m.service.Document().BetterStrategies
}

// View renders the active wizard step.
func (m *Model) View() string {
	info := urgesurf.Info(m.flow.Step())

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(info.Title))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(info.Subtitle))
	b.WriteString("\n\n")

	switch m.flow.Step() {
	case urgesurf.StepIntensity:
		b.WriteString(scale(m.flow.Intensity(), m.theme))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Faint.Render("←/→ adjust · enter begin"))
	case urgesurf.StepFeeling:
		if m.typing {
			b.WriteString(m.input.View())
			b.WriteString("\n\n")
			b.WriteString(m.theme.Faint.Render("enter continue · esc stop typing"))
		} else {
			feeling := m.flow.Feeling()
			if feeling == "" {
				feeling = "—"
			}
			b.WriteString(m.theme.Body.Render("  " + feeling))
			b.WriteString("\n\n")
			b.WriteString(m.theme.Faint.Render("type to name it · enter continue"))
		}
	case urgesurf.StepBreathe:
		for i := 0; i < urgesurf.BreathTarget; i++ {
			if i < m.flow.Breaths() {
				b.WriteString(m.theme.Accent.Render("  ●"))
			} else {
				b.WriteString(m.theme.Faint.Render("  ○"))
			}
		}
		b.WriteString("\n\n")
		b.WriteString(m.theme.Faint.Render("space for each breath out"))
	case urgesurf.StepStrategy:
		for i, s := range m.strategies() {
			marker := "  "
			style := m.theme.Body
			if i == m.strategy {
				marker = "→ "
				style = m.theme.Selected
			}
			b.WriteString(style.Render(marker + s))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Faint.Render("↑/↓ move · enter choose · esc back"))
	case urgesurf.StepReflection:
		b.WriteString(m.theme.Body.Render("  Where is the urge now?"))
		b.WriteString("\n")
		b.WriteString(scale(m.flow.PostIntensity(), m.theme))
		b.WriteString("\n")
		if m.typing {
			b.WriteString(m.input.View())
			b.WriteString("\n")
		} else if m.flow.Reflection() != "" {
			b.WriteString(m.theme.Faint.Render("  " + m.flow.Reflection()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Faint.Render("←/→ adjust · n add a note · enter finish"))
	}

	b.WriteString("\n")
	return b.String()
}

func scale(n int, th theme.Theme) string {
	var b strings.Builder
	b.WriteString("  ")
	for i := 1; i <= 10; i++ {
		if i <= n {
			b.WriteString(th.Accent.Render("█"))
		} else {
			b.WriteString(th.Faint.Render("░"))
		}
	}
	b.WriteString(fmt.Sprintf("  %d/10", n))
	return b.String()
}
