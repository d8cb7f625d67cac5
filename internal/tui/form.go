package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kemilad/dashapp/internal/nav"
)

// inertTapMsg reports a tap on an element that has no action.
type inertTapMsg struct {
	Screen  nav.Screen
	Element string
}

// element is one stop of a screen's focus ring. It is either a text field
// (input set) or a button; a button with a nil tap is inert.
type element struct {
	label string
	input *textinput.Model
	tap   func() tea.Cmd
}

func (e *element) isField() bool { return e.input != nil }

// form is the focus ring shared by all screens.
type form struct {
	screen nav.Screen
	elems  []*element
	focus  int
}

func newForm(screen nav.Screen, elems ...*element) *form {
	f := &form{screen: screen, elems: elems}
	if len(elems) > 0 && elems[0].isField() {
		elems[0].input.Focus()
	}
	return f
}

func (f *form) init() tea.Cmd {
	if f.current().isField() {
		return textinput.Blink
	}
	return nil
}

func (f *form) current() *element { return f.elems[f.focus] }

func (f *form) focusAt(i int) tea.Cmd {
	if i == f.focus {
		return nil
	}
	if cur := f.current(); cur.isField() {
		cur.input.Blur()
	}
	f.focus = i
	if next := f.current(); next.isField() {
		return next.input.Focus()
	}
	return nil
}

func (f *form) move(delta int) tea.Cmd {
	n := len(f.elems)
	return f.focusAt(((f.focus+delta)%n + n) % n)
}

// activate is a tap on element i. Fields have no tap action.
func (f *form) activate(i int) tea.Cmd {
	e := f.elems[i]
	switch {
	case e.isField():
		return nil
	case e.tap != nil:
		return e.tap()
	default:
		screen, label := f.screen, e.label
		return func() tea.Msg { return inertTapMsg{Screen: screen, Element: label} }
	}
}

// update routes msg through the ring. layout renders the current frame and
// is only called for pointer input.
func (f *form) update(msg tea.Msg, layout func() *canvas) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return f.move(1)
		case "shift+tab", "up":
			return f.move(-1)
		case "enter":
			if f.current().isField() {
				return f.move(1)
			}
			return f.activate(f.focus)
		case " ", "space":
			if !f.current().isField() {
				return f.activate(f.focus)
			}
		}
		return f.forward(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		id, ok := layout().hit(msg.X, msg.Y)
		if !ok {
			return nil
		}
		return tea.Batch(f.focusAt(id), f.activate(id))
	}
	return f.forward(msg)
}

// forward hands msg to the focused field, if any.
func (f *form) forward(msg tea.Msg) tea.Cmd {
	e := f.current()
	if !e.isField() {
		return nil
	}
	var cmd tea.Cmd
	*e.input, cmd = e.input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	if e := f.elems[i]; e.isField() {
		return e.input.Value()
	}
	return ""
}

func (f *form) isFocused(i int) bool { return f.focus == i }
