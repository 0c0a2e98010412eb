// Package events defines the messages shared between TUI views.
package events

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// TickMsg is the once-per-second heartbeat. The root model re-arms it; timed
// views advance their state machines by exactly one second per message.
type TickMsg struct{}

// Tick arms the next heartbeat.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// AdvanceMsg fires after a short delay to drive an automatic step transition.
type AdvanceMsg struct {
	Gen int
}

// Advance schedules an AdvanceMsg carrying gen, so stale transitions can be
// recognized and dropped.
func Advance(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AdvanceMsg{Gen: gen}
	})
}

// DocumentChangedMsg reports that the stored document was rewritten, either
// by this process or by another one noticed through the store watcher.
type DocumentChangedMsg struct{}

// StatusMsg replaces the footer status line.
type StatusMsg struct {
	Text string
}

// Status emits a StatusMsg.
func Status(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}
