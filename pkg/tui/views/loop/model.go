// Package loop renders the daily check-in screen: streak, timeline, and
// today's entry.
package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/glyph"
	"tableflip.dev/vireo/pkg/insights"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

type field int

const (
	fieldMood field = iota
	fieldEnergy
	fieldSleep
	fieldOutside
	fieldMoved
	fieldDrank
	fieldTempted
	fieldGratitude
	fieldWin
	fieldCount
)

// Model is the check-in view.
type Model struct {
	service *app.Service
	theme   theme.Theme

	cursor  field
	editing bool
	input   textinput.Model

	width  int
	height int
}

// New constructs the check-in view.
func New(s *app.Service, th theme.Theme) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 200

	return &Model{
		service: s,
		theme:   th,
		input:   in,
	}
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
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case "enter", " ", "space":
		return m.activate()
	case "left", "h":
		return m.adjust(-1)
	case "right", "l":
		return m.adjust(1)
	}
	return m, nil
}

func (m *Model) updateEditing(key tea.KeyMsg) (ui.Component, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		target := m.cursor
		err := m.service.UpdateToday(func(l *document.DailyLog) {
			if target == fieldGratitude {
				l.Gratitude = text
			} else {
				l.SmallWin = text
			}
		})
		if err != nil {
			return m, events.Status(err.Error())
		}
		return m, events.Status("Saved.")
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) activate() (ui.Component, tea.Cmd) {
	switch m.cursor {
	case fieldGratitude, fieldWin:
		log := m.service.TodayLog()
		if m.cursor == fieldGratitude {
			m.input.SetValue(log.Gratitude)
		} else {
			m.input.SetValue(log.SmallWin)
		}
		m.editing = true
		return m, m.input.Focus()
	case fieldOutside, fieldMoved, fieldDrank, fieldTempted:
		target := m.cursor
		err := m.service.UpdateToday(func(l *document.DailyLog) {
			switch target {
			case fieldOutside:
				l.GotOutside = !l.GotOutside
			case fieldMoved:
				l.MovedBody = !l.MovedBody
			case fieldDrank:
				l.DrankToday = !l.DrankToday
			case fieldTempted:
				l.FeltTempted = !l.FeltTempted
			}
		})
		if err != nil {
			return m, events.Status(err.Error())
		}
		return m, events.Status("Saved.")
	default:
		return m.adjust(1)
	}
}

// adjust cycles mood/energy or nudges sleep by half an hour.
func (m *Model) adjust(dir int) (ui.Component, tea.Cmd) {
	target := m.cursor
	var err error
	switch target {
	case fieldMood:
		err = m.service.UpdateToday(func(l *document.DailyLog) {
			l.Mood = cycleMood(l.Mood, dir)
		})
	case fieldEnergy:
		err = m.service.UpdateToday(func(l *document.DailyLog) {
			l.Energy = cycleEnergy(l.Energy, dir)
		})
	case fieldSleep:
		err = m.service.UpdateToday(func(l *document.DailyLog) {
			v := 7.0
			if l.Sleep != nil {
				v = *l.Sleep
			}
			v += 0.5 * float64(dir)
			if v < 0 {
				v = 0
			}
			l.Sleep = &v
		})
	default:
		return m, nil
	}
	if err != nil {
		return m, events.Status(err.Error())
	}
	return m, events.Status("Saved.")
}

func cycleMood(current document.Mood, dir int) document.Mood {
	moods := document.Moods()
	idx := 0
	for i, mood := range moods {
		if mood == current {
			idx = i + dir
		}
	}
	if current == "" && dir < 0 {
		idx = len(moods) - 1
	}
	return moods[(idx+len(moods))%len(moods)]
}

func cycleEnergy(current document.Energy, dir int) document.Energy {
	levels := document.Energies()
	idx := 0
	for i, e := range levels {
		if e == current {
			idx = i + dir
		}
	}
	if current == "" && dir < 0 {
		idx = len(levels) - 1
	}
	return levels[(idx+len(levels))%len(levels)]
}

// View renders the check-in screen.
func (m *Model) View() string {
	doc := m.service.Document()
	log := m.service.TodayLog()
	now := m.service.Now()

	var b strings.Builder

	if doc.SobrietyTracking && doc.SobrietyStartDate != "" {
		days := m.service.Streak()
		unit := "days"
		if days == 1 {
			unit = "day"
		}
		b.WriteString(m.theme.Title.Render(fmt.Sprintf("%d %s", days, unit)))
		b.WriteString(m.theme.Faint.Render("  one day at a time"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Subtitle.Render("Last 7 days"))
	b.WriteString("\n")
	for _, d := range daily.Last7Days(doc, now) {
		mark := "·"
		if d.Log != nil && d.Log.Mood != "" {
			mark = glyph.Mood(d.Log.Mood)
		}
		label := fmt.Sprintf("%6s %s", d.Label, mark)
		if d.Label == "Today" {
			label = m.theme.Accent.Render(label)
		}
		b.WriteString(label)
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.Subtitle.Render("Today"))
	b.WriteString("\n")
	b.WriteString(m.line(fieldMood, "mood", moodLabel(log.Mood)))
	b.WriteString(m.line(fieldEnergy, "energy", energyLabel(log.Energy)))
	b.WriteString(m.line(fieldSleep, "sleep", sleepLabel(log.Sleep)))
	b.WriteString(m.line(fieldOutside, "got outside", check(log.GotOutside)))
	b.WriteString(m.line(fieldMoved, "moved body", check(log.MovedBody)))
	b.WriteString(m.line(fieldDrank, "drank today", check(log.DrankToday)))
	b.WriteString(m.line(fieldTempted, "felt tempted", check(log.FeltTempted)))
	b.WriteString(m.line(fieldGratitude, "gratitude", textLabel(log.Gratitude)))
	b.WriteString(m.line(fieldWin, "small win", textLabel(log.SmallWin)))

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.theme.Faint.Render("enter save · esc cancel"))
		b.WriteString("\n")
	}

	sum := insights.Aggregate(daily.Last30Days(doc, now))
	if sum.HasData() {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render("Last 30 days"))
		b.WriteString("\n")
		if sum.AvgSleep > 0 {
			b.WriteString(fmt.Sprintf("  sleep %.1f hrs avg", sum.AvgSleep))
		}
		if sum.MostCommonMood != "" {
			b.WriteString(fmt.Sprintf("  · mostly %s", sum.MostCommonMood))
		}
		b.WriteString(fmt.Sprintf("  · outside %s", sum.Ratio(sum.OutsideDays)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) line(f field, label, value string) string {
	marker := "  "
	style := m.theme.Body
	if f == m.cursor && !m.editing {
		marker = "→ "
		style = m.theme.Selected
	}
	return style.Render(fmt.Sprintf("%s%-13s %s", marker, label, value)) + "\n"
}

func moodLabel(mood document.Mood) string {
	if mood == "" {
		return "—"
	}
	return fmt.Sprintf("%s %s", glyph.Mood(mood), mood)
}

func energyLabel(e document.Energy) string {
	if e == "" {
		return "—"
	}
	return fmt.Sprintf("%s %s", glyph.Energy(e), e)
}

func sleepLabel(sleep *float64) string {
	if sleep == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f hrs", *sleep)
}

func textLabel(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func check(on bool) string {
	if on {
		return "✓"
	}
	return "✗"
}
