// Package tui implements the interactive terminal UI for dashapp.
package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kemilad/dashapp/internal/nav"
)

// Config holds the runtime configuration passed from the CLI to the TUI.
type Config struct {
	Logger *slog.Logger
	// Navigate overrides the navigation callback handed to screens.
	// Defaults to nav.Go.
	Navigate Navigate
}

// hintLines is the height of the key hint bar under the viewport.
const hintLines = 1

// Model is the root BubbleTea model; it owns navigation between screens.
type Model struct {
	cfg      Config
	log      *slog.Logger
	host     *nav.Host
	screen   Screen
	viewport viewport.Model
	ready    bool
	err      error

	// focus is the last followed focus span; the viewport only moves when
	// it changes so manual scrolling sticks.
	focus [2]int
}

// NewModel constructs the root model and mounts the dashboard.
func NewModel(cfg Config) *Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Navigate == nil {
		cfg.Navigate = nav.Go
	}
	host := nav.NewHost()
	return &Model{
		cfg:    cfg,
		log:    cfg.Logger,
		host:   host,
		screen: mount(host.Current(), cfg.Navigate),
		focus:  [2]int{-1, -1},
	}
}

// Current returns the active screen id.
func (m *Model) Current() nav.Screen { return m.host.Current() }

// Screen returns the mounted screen.
func (m *Model) Screen() Screen { return m.screen }

// Err returns the fatal error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	m.log.Debug("mounted", "screen", m.screen.ID())
	return m.screen.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "pgup", "pgdown":
			m.scroll(msg)
			return m, nil
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.scroll(msg)
			return m, nil
		}
		if m.ready {
			if msg.Y >= m.viewport.Height {
				return m, nil
			}
			msg.Y += m.viewport.YOffset
		}
		return m, m.delegate(msg)

	case nav.GoMsg:
		return m, m.navigate(msg.Screen)

	case inertTapMsg:
		m.log.Debug("inert tap", "screen", msg.Screen, "element", msg.Element)
		return m, nil
	}

	return m, m.delegate(msg)
}

func (m *Model) View() string {
	if m.err != nil {
		return StyleError.Render("  "+m.err.Error()) + "\n"
	}
	body := m.screen.View()
	if m.ready {
		body = m.viewport.View()
	}
	return body + "\n" + m.renderHints()
}

// delegate hands msg to the active screen and refreshes the viewport.
func (m *Model) delegate(msg tea.Msg) tea.Cmd {
	next, cmd := m.screen.Update(msg)
	m.screen = next
	m.sync()
	return cmd
}

// navigate applies a transition requested by a screen. An unknown target is
// a programming error and stops the program.
func (m *Model) navigate(to nav.Screen) tea.Cmd {
	from := m.host.Current()
	if err := m.host.Navigate(to); err != nil {
		m.err = err
		m.log.Error("navigation failed", "from", from, "error", err)
		return tea.Quit
	}
	if to == from {
		return nil
	}
	m.screen = mount(to, m.cfg.Navigate)
	m.focus = [2]int{-1, -1}
	m.log.Debug("navigated", "from", from, "to", to)
	if m.ready {
		m.viewport.GotoTop()
	}
	m.sync()
	return m.screen.Init()
}

func (m *Model) resize(w, h int) {
	height := max(1, h-hintLines)
	if !m.ready {
		m.viewport = viewport.New(w, height)
		m.viewport.KeyMap = viewport.KeyMap{
			PageDown: key.NewBinding(key.WithKeys("pgdown")),
			PageUp:   key.NewBinding(key.WithKeys("pgup")),
		}
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = height
	}
	m.sync()
}

func (m *Model) scroll(msg tea.Msg) {
	if !m.ready {
		return
	}
	m.viewport, _ = m.viewport.Update(msg)
}

// sync pushes the screen frame into the viewport and scrolls a newly
// focused element into view.
func (m *Model) sync() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.screen.View())
	top, bottom := m.screen.FocusBounds()
	if m.focus == [2]int{top, bottom} {
		return
	}
	m.focus = [2]int{top, bottom}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) renderHints() string {
	hints := []string{
		Key("tab", "next"),
		Key("enter", "tap"),
		Key("pgup/pgdn", "scroll"),
		Key("ctrl+c", "quit"),
	}
	return "  " + strings.Join(hints, "  ")
}
