// Package music renders the music-scratchpad screen: a 20-minute session
// with a free-text pad and an optional voice memo.
package music

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/recording"
	"tableflip.dev/vireo/pkg/timer"
	"tableflip.dev/vireo/pkg/timeutil"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Model is the music scratchpad view.
type Model struct {
	service *app.Service
	theme   theme.Theme

	timer     *timer.Timer
	recorder  *recording.Session
	pad       textarea.Model
	active    bool
	recordErr string

	width  int
	height int
}

// New constructs the music view.
func New(s *app.Service, th theme.Theme, capture recording.Capture) *Model {
	pad := textarea.New()
	pad.Placeholder = "What are you hearing?"
	pad.CharLimit = 2000

	return &Model{
		service:  s,
		theme:    th,
		timer:    timer.NewMusic(),
		recorder: recording.NewSession(capture),
		pad:      pad,
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize stores the available viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 4
	if w > 60 {
		w = 60
	}
	if w > 0 {
		m.pad.SetWidth(w)
	}
}

// Teardown releases the microphone if the user quits mid-recording. Nothing
// is saved on this path.
func (m *Model) Teardown() {
	m.recorder.Teardown()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch v := msg.(type) {
	case events.TickMsg:
		m.timer.Tick()
		m.recorder.Tick()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(v)
	}
	return m, nil
}

func (m *Model) updateKey(key tea.KeyMsg) (ui.Component, tea.Cmd) {
	if !m.active {
		if key.String() == "s" || key.String() == "enter" {
			m.active = true
			m.recordErr = ""
			m.timer.StartMusic()
			m.pad.Reset()
			return m, tea.Batch(m.pad.Focus(), events.Status("Twenty minutes. Just play."))
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+r":
		return m.toggleRecording()
	case "ctrl+d":
		if m.recorder.State() == recording.StateStopped {
			m.recorder.Delete()
			return m, events.Status("Memo deleted.")
		}
		return m, nil
	case "ctrl+e":
		return m.endSession()
	}

	var cmd tea.Cmd
	m.pad, cmd = m.pad.Update(key)
	return m, cmd
}

func (m *Model) toggleRecording() (ui.Component, tea.Cmd) {
	switch m.recorder.State() {
	case recording.StateRecording:
		if err := m.recorder.Stop(); err != nil {
			m.recordErr = err.Error()
		}
		return m, events.Status("Memo captured. ctrl+d discards it.")
	case recording.StateStopped:
		return m, events.Status("A memo is already waiting; ctrl+d to discard it first.")
	default:
		if err := m.recorder.Start(context.Background()); err != nil {
			var denied *recording.PermissionDeniedError
			if errors.As(err, &denied) {
				m.recordErr = "microphone unavailable"
				return m, events.Status("Microphone unavailable. The pad still works.")
			}
			m.recordErr = err.Error()
			return m, events.Status(err.Error())
		}
		m.recordErr = ""
		return m, events.Status("Recording.")
	}
}

// endSession commits the pad and any captured memo as one entry. An empty
// session saves nothing.
func (m *Model) endSession() (ui.Component, tea.Cmd) {
	if m.recorder.State() == recording.StateRecording {
		if err := m.recorder.Stop(); err != nil {
			return m, events.Status(err.Error())
		}
	}

	audio := ""
	if m.recorder.State() == recording.StateStopped {
		encoded, err := m.recorder.Commit()
		if err != nil {
			return m, events.Status(err.Error())
		}
		audio = encoded
	}

	text := strings.TrimSpace(m.pad.Value())
	m.active = false
	m.timer.Reset()
	m.pad.Blur()

	if text == "" && audio == "" {
		return m, events.Status("Nothing to keep. Session closed.")
	}

	entry := document.MusicEntry{
		Text:      text,
		Audio:     audio,
		Timestamp: document.Timestamp{Time: m.service.Now()},
	}
	if err := m.service.AddMusicEntry(entry); err != nil {
		return m, events.Status(err.Error())
	}
	return m, events.Status("Saved to the journal.")
}

// View renders the music screen.
func (m *Model) View() string {
	var b strings.Builder

	if !m.active {
		b.WriteString(m.theme.Subtitle.Render("A timed space to make something"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Faint.Render("  s to start a 20 minute session"))
		b.WriteString("\n")
		b.WriteString(m.recent())
		return b.String()
	}

	clock := timeutil.FormatClock(m.timer.Remaining())
	if m.timer.State() == timer.StateCompleted {
		b.WriteString(m.theme.Title.Render("  0:00"))
		b.WriteString(m.theme.Faint.Render("  time's up, keep going if it's flowing"))
	} else {
		b.WriteString(m.theme.Title.Render("  " + clock))
	}
	b.WriteString("\n\n")

	b.WriteString(m.pad.View())
	b.WriteString("\n\n")

	switch m.recorder.State() {
	case recording.StateRecording:
		b.WriteString(m.theme.Accent.Render(fmt.Sprintf("  ● recording %s", timeutil.FormatClock(m.recorder.Elapsed()))))
	case recording.StateStopped:
		if a := m.recorder.Artifact(); a != nil {
			b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  memo captured, %s", timeutil.FormatClock(a.Duration))))
		}
	default:
		if m.recordErr != "" {
			b.WriteString(m.theme.Faint.Render("  " + m.recordErr))
		} else {
			b.WriteString(m.theme.Faint.Render("  ctrl+r to record a voice memo"))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("  ctrl+e end and save · ctrl+r record · ctrl+d discard memo"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) recent() string {
	entries := m.service.Document().MusicEntries
	if len(entries) == 0 {
		return ""
	}

	width := m.width - 6
	if width <= 0 || width > 70 {
		width = 70
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Journal"))
	b.WriteString("\n")
	start := len(entries) - 10
	if start < 0 {
		start = 0
	}
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		b.WriteString(m.theme.Faint.Render("  " + e.Timestamp.Local().Format("Jan _2 15:04")))
		if e.HasAudio() {
			b.WriteString(m.theme.Faint.Render("  [audio]"))
		}
		b.WriteString("\n")
		if e.Text != "" {
			wrapped := wordwrap.String(e.Text, width)
			for _, line := range strings.Split(wrapped, "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	return b.String()
}
