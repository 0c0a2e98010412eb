package focus

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/store"
	"tableflip.dev/vireo/pkg/timer"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	s, err := app.New(p)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	s.SetNow(func() time.Time {
		return time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	})
	return s
}

func update(t *testing.T, c ui.Component, msg tea.Msg) *Model {
	t.Helper()
	next, _ := c.Update(msg)
	m, ok := next.(*Model)
	if !ok {
		t.Fatalf("unexpected component type %T", next)
	}
	return m
}

func TestCompletedSessionIsLogged(t *testing.T) {
	s := newService(t)
	m := New(s, theme.Default())

	// Quick Break is the fourth preset, five minutes.
	for i := 0; i < 3; i++ {
		m = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.timer.State() != timer.StateRunning {
		t.Fatalf("expected running, got %v", m.timer.State())
	}

	for i := 0; i < 5*60; i++ {
		m = update(t, m, events.TickMsg{})
	}

	sessions := s.Document().TimerSessions
	if len(sessions) != 1 {
		t.Fatalf("expected one logged session, got %d", len(sessions))
	}
	if sessions[0].Type != "Quick Break" || sessions[0].Duration != 5 {
		t.Fatalf("unexpected record %+v", sessions[0])
	}
	if m.timer.State() != timer.StateIdle {
		t.Fatalf("expected auto-dismiss to idle, got %v", m.timer.State())
	}
}

func TestPauseSuspendsCountdown(t *testing.T) {
	s := newService(t)
	m := New(s, theme.Default())

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}) // Stretch
	remaining := m.timer.Remaining()

	m = update(t, m, tea.KeyPressMsg{Text: "p", Code: 'p'})
	for i := 0; i < 100; i++ {
		m = update(t, m, events.TickMsg{})
	}
	if m.timer.Remaining() != remaining {
		t.Fatalf("paused timer accrued time: %d -> %d", remaining, m.timer.Remaining())
	}

	m = update(t, m, tea.KeyPressMsg{Text: "p", Code: 'p'})
	m = update(t, m, events.TickMsg{})
	if m.timer.Remaining() != remaining-1 {
		t.Fatalf("resume did not continue countdown: %d", m.timer.Remaining())
	}
}

func TestResetDiscardsWithoutLogging(t *testing.T) {
	s := newService(t)
	m := New(s, theme.Default())

	m = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		m = update(t, m, events.TickMsg{})
	}
	m = update(t, m, tea.KeyPressMsg{Text: "r", Code: 'r'})

	if n := len(s.Document().TimerSessions); n != 0 {
		t.Fatalf("discarded session was logged, %d records", n)
	}
	if !strings.Contains(m.View(), "Pick a session") {
		t.Fatal("expected preset list after reset")
	}
}
