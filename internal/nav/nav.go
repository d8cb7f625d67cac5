// Package nav holds the screen identifiers and the navigation state machine.
package nav

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies which screen is mounted.
type Screen int

const (
	Dashboard Screen = iota
	Login
	SignUp
)

// ErrInvalidScreen is returned when navigation targets an unknown screen.
var ErrInvalidScreen = errors.New("invalid screen id")

func (s Screen) String() string {
	switch s {
	case Dashboard:
		return "dashboard"
	case Login:
		return "login"
	case SignUp:
		return "signup"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Valid reports whether s is one of the known screens.
func (s Screen) Valid() bool {
	return s >= Dashboard && s <= SignUp
}

// Trigger is a user action that may move the app to another screen.
type Trigger int

const (
	AvatarTap Trigger = iota
	RegisterTap
)

// Transition returns the screen reached from `from` on trigger t.
// ok is false when the pair has no edge.
func Transition(from Screen, t Trigger) (to Screen, ok bool) {
	switch {
	case from == Dashboard && t == AvatarTap:
		return Login, true
	case from == Login && t == RegisterTap:
		return SignUp, true
	}
	return from, false
}

// Host owns the current screen. The zero value starts on the dashboard.
type Host struct {
	current Screen
}

// NewHost returns a host positioned on the dashboard.
func NewHost() *Host {
	return &Host{current: Dashboard}
}

// Current returns the active screen.
func (h *Host) Current() Screen {
	return h.current
}

// Navigate makes `to` the active screen. No history is kept.
func (h *Host) Navigate(to Screen) error {
	if !to.Valid() {
		return fmt.Errorf("navigate to %s: %w", to, ErrInvalidScreen)
	}
	h.current = to
	return nil
}

// GoMsg asks the root model to navigate.
type GoMsg struct {
	Screen
}

// Go returns a command that requests navigation to s.
func Go(s Screen) tea.Cmd {
	return func() tea.Msg {
		return GoMsg{Screen: s}
	}
}
