package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kemilad/dashapp/internal/nav"
)

// Navigate is the callback a screen uses to request a transition.
type Navigate func(nav.Screen) tea.Cmd

// Screen is a mounted screen component.
type Screen interface {
	ID() nav.Screen
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View() string
	// FocusBounds returns the first and one-past-last content line of the
	// focused element.
	FocusBounds() (top, bottom int)
}

// mount builds a fresh screen for s. Callers validate s first.
func mount(s nav.Screen, navigate Navigate) Screen {
	switch s {
	case nav.Login:
		return NewLogin(navigate)
	case nav.SignUp:
		return NewSignUp(navigate)
	default:
		return NewDashboard(navigate)
	}
}

func focusBounds(c *canvas, id int) (int, int) {
	r, ok := c.bounds(id)
	if !ok {
		return 0, 0
	}
	return r.y, r.y + r.h
}
