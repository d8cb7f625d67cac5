package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kemilad/dashapp/internal/nav"
)

// Sign-up focus ring.
const (
	signUpName = iota
	signUpEmail
	signUpPassword
	signUpSubmit
	signUpRecover
)

// SignUpScreen is a dead end: nothing on it navigates.
type SignUpScreen struct {
	form *form
	pal  palette
}

var _ Screen = (*SignUpScreen)(nil)

// NewSignUp mounts an empty sign-up form.
func NewSignUp(_ Navigate) *SignUpScreen {
	p := signUpPalette
	return &SignUpScreen{
		pal: p,
		form: newForm(nav.SignUp,
			&element{label: "Name", input: newInput("Name", "☺ ", contentWidth, p)},
			&element{label: "Email", input: newInput("Email", "✉ ", contentWidth, p)},
			&element{label: "Password", input: newInput("Password", "⚿ ", contentWidth, p)},
			&element{label: "Submit"},
			&element{label: "Recover password"},
		),
	}
}

func (s *SignUpScreen) ID() nav.Screen { return nav.SignUp }

func (s *SignUpScreen) Init() tea.Cmd { return s.form.init() }

func (s *SignUpScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.update(msg, s.layout)
}

func (s *SignUpScreen) View() string { return s.layout().String() }

func (s *SignUpScreen) FocusBounds() (int, int) {
	return focusBounds(s.layout(), s.form.focus)
}

func (s *SignUpScreen) Name() string     { return s.form.value(signUpName) }
func (s *SignUpScreen) Email() string    { return s.form.value(signUpEmail) }
func (s *SignUpScreen) Password() string { return s.form.value(signUpPassword) }

func (s *SignUpScreen) layout() *canvas {
	f, p := s.form, s.pal
	c := newCanvas(pageMargin)
	c.add(headerArt(p))
	c.gap(1)
	c.add(renderTitle("Create\nAccount", p))

	for _, id := range []int{signUpName, signUpEmail, signUpPassword} {
		c.gap(1)
		c.region(id, renderField(f.elems[id], f.isFocused(id), contentWidth, p))
	}

	c.gap(1)
	arrow := submitArrow(f.isFocused(signUpSubmit), p)
	c.row(spacer(contentWidth-lipgloss.Width(arrow)), cell{id: signUpSubmit, content: arrow})

	c.gap(1)
	c.region(signUpRecover, renderLink("Forget your password? Recover it", f.isFocused(signUpRecover), p))
	c.gap(1)
	return c
}
