// Package app composes the four screens into the full-screen UI.
package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/recording"
	"tableflip.dev/vireo/pkg/store"
	"tableflip.dev/vireo/pkg/tui/events"
	"tableflip.dev/vireo/pkg/tui/theme"
	"tableflip.dev/vireo/pkg/tui/ui"
	"tableflip.dev/vireo/pkg/tui/views/focus"
	"tableflip.dev/vireo/pkg/tui/views/loop"
	"tableflip.dev/vireo/pkg/tui/views/music"
	"tableflip.dev/vireo/pkg/tui/views/urge"
)

type tab struct {
	name string
	view ui.Component
}

// Model is the root TUI model. It owns view switching, the shared heartbeat,
// and the store watcher; everything else lives in the views.
type Model struct {
	service *app.Service
	theme   theme.Theme

	tabs   []tab
	active int
	status string

	watch  <-chan store.Event
	cancel context.CancelFunc

	width  int
	height int
}

// New constructs the root model.
func New(service *app.Service) *Model {
	th := theme.ForAccent(service.Document().ThemeColor)

	musicView := music.New(service, th, &recording.MicCapture{})

	return &Model{
		service: service,
		theme:   th,
		status:  "Ready",
		tabs: []tab{
			{name: "Loop", view: loop.New(service, th)},
			{name: "Focus", view: focus.New(service, th)},
			{name: "Urge", view: urge.New(service, th)},
			{name: "Music", view: musicView},
		},
	}
}

// Run launches the Bubble Tea program.
func Run(service *app.Service) error {
	p := tea.NewProgram(New(service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{events.Tick(), m.startWatch()}
	for _, t := range m.tabs {
		if cmd := t.view.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// startWatch subscribes to on-disk changes so edits from a second vireo
// process show up without restarting the UI.
func (m *Model) startWatch() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.service.Watch(ctx)
	if err != nil {
		cancel()
		return nil
	}
	m.watch = ch
	m.cancel = cancel
	return m.nextWatchEvent()
}

func (m *Model) nextWatchEvent() tea.Cmd {
	ch := m.watch
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return events.DocumentChangedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		for _, t := range m.tabs {
			t.view.SetSize(v.Width, v.Height-3)
		}
		return m, nil
	case events.TickMsg:
		// Every view gets the heartbeat so background timers keep counting.
		cmds := []tea.Cmd{events.Tick()}
		for i, t := range m.tabs {
			next, cmd := t.view.Update(msg)
			m.tabs[i].view = next
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	case events.StatusMsg:
		m.status = v.Text
		return m, nil
	case events.DocumentChangedMsg:
		if err := m.service.Reload(); err != nil {
			m.status = err.Error()
		}
		return m, m.nextWatchEvent()
	case tea.KeyMsg:
		switch v.String() {
		case "ctrl+c":
			m.teardown()
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % len(m.tabs)
			return m, nil
		case "shift+tab":
			m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
			return m, nil
		}
	}

	next, cmd := m.tabs[m.active].view.Update(msg)
	m.tabs[m.active].view = next
	return m, cmd
}

func (m *Model) teardown() {
	for _, t := range m.tabs {
		if mv, ok := t.view.(*music.Model); ok {
			mv.Teardown()
		}
	}
	if m.cancel != nil {
		m.cancel()
	}
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	var b strings.Builder

	names := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			names = append(names, m.theme.Footer.Active.Render(t.name))
		} else {
			names = append(names, m.theme.Footer.Tab.Render(t.name))
		}
	}
	b.WriteString("  " + strings.Join(names, "  ·  "))
	b.WriteString("\n\n")

	b.WriteString(m.tabs[m.active].view.View())

	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Status.Render("  " + m.status))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render("  tab switch screen · ctrl+c quit"))

	return b.String(), nil
}
