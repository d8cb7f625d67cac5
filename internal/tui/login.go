package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kemilad/dashapp/internal/nav"
)

// Login focus ring.
const (
	loginEmail = iota
	loginPassword
	loginSubmit
	loginGoogle
	loginFacebook
	loginRegister
)

const socialWidth = (contentWidth - 2) / 2

// LoginScreen holds email and password buffers that are never submitted.
type LoginScreen struct {
	form *form
	pal  palette
}

var _ Screen = (*LoginScreen)(nil)

// NewLogin mounts an empty login form with the email field focused.
func NewLogin(navigate Navigate) *LoginScreen {
	p := loginPalette
	return &LoginScreen{
		pal: p,
		form: newForm(nav.Login,
			&element{label: "Email", input: newInput("Email", "✉ ", contentWidth, p)},
			&element{label: "Password", input: newInput("Password", "⚿ ", contentWidth, p)},
			&element{label: "Submit"},
			&element{label: "Google"},
			&element{label: "Facebook"},
			&element{label: "Register", tap: func() tea.Cmd {
				to, _ := nav.Transition(nav.Login, nav.RegisterTap)
				return navigate(to)
			}},
		),
	}
}

func (s *LoginScreen) ID() nav.Screen { return nav.Login }

func (s *LoginScreen) Init() tea.Cmd { return s.form.init() }

func (s *LoginScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	return s, s.form.update(msg, s.layout)
}

func (s *LoginScreen) View() string { return s.layout().String() }

func (s *LoginScreen) FocusBounds() (int, int) {
	return focusBounds(s.layout(), s.form.focus)
}

func (s *LoginScreen) Email() string    { return s.form.value(loginEmail) }
func (s *LoginScreen) Password() string { return s.form.value(loginPassword) }

func (s *LoginScreen) layout() *canvas {
	f, p := s.form, s.pal
	c := newCanvas(pageMargin)
	c.add(headerArt(p))
	c.gap(1)
	c.add(renderTitle("Welcome\nBack", p))

	for _, id := range []int{loginEmail, loginPassword} {
		c.gap(1)
		c.region(id, renderField(f.elems[id], f.isFocused(id), contentWidth, p))
	}

	c.gap(1)
	arrow := submitArrow(f.isFocused(loginSubmit), p)
	c.row(spacer(contentWidth-lipgloss.Width(arrow)), cell{id: loginSubmit, content: arrow})

	social := box(colSocialRim).
		Foreground(colSocial).
		Bold(true).
		Width(socialWidth - 2).
		Align(lipgloss.Center)
	c.gap(1)
	c.row(
		cell{id: loginGoogle, content: renderButton("G  Google", social, f.isFocused(loginGoogle), p)},
		spacer(2),
		cell{id: loginFacebook, content: renderButton("f  Facebook", social, f.isFocused(loginFacebook), p)},
	)

	c.gap(1)
	c.region(loginRegister, renderLink("Are you a new user? Register here", f.isFocused(loginRegister), p))
	c.gap(1)
	return c
}
