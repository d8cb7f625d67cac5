package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemilad/dashapp/internal/nav"
)

func TestSignUp_NoTapNavigates(t *testing.T) {
	spy := &navSpy{}
	s := NewSignUp(spy.navigate)
	n := len(s.form.elems)

	// Keyboard taps on every stop, twice round the ring.
	for i := 0; i < 2*n; i++ {
		s.Update(keyMsg("enter"))
		s.Update(keyMsg("space"))
		s.Update(keyMsg("tab"))
	}

	// Pointer taps on every region.
	c := s.layout()
	for id := 0; id < n; id++ {
		r, ok := c.bounds(id)
		require.True(t, ok, "element %d has no region", id)
		s.Update(click(center(r)))
		s.Update(click(r.x, r.y))
	}

	assert.Empty(t, spy.calls)
}

func TestSignUp_InertTargets(t *testing.T) {
	s := NewSignUp(nav.Go)
	press(s, "tab", signUpSubmit)
	_, cmd := s.Update(keyMsg("enter"))
	msgs := run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, inertTapMsg{Screen: nav.SignUp, Element: "Submit"}, msgs[0])

	s.Update(keyMsg("tab"))
	_, cmd = s.Update(keyMsg("enter"))
	msgs = run(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, inertTapMsg{Screen: nav.SignUp, Element: "Recover password"}, msgs[0])
}

func TestSignUp_BuffersAreIndependent(t *testing.T) {
	s := NewSignUp(nav.Go)
	typeText(s, "David")
	s.Update(keyMsg("tab"))
	typeText(s, "d@f.io")
	s.Update(keyMsg("tab"))
	typeText(s, "pw")

	assert.Equal(t, "David", s.Name())
	assert.Equal(t, "d@f.io", s.Email())
	assert.Equal(t, "pw", s.Password())

	// Walking back with shift+tab and editing touches only that field.
	press(s, "shift+tab", 2)
	typeText(s, "!")
	assert.Equal(t, "David!", s.Name())
	assert.Equal(t, "d@f.io", s.Email())
	assert.Equal(t, "pw", s.Password())
}

func TestSignUp_EmptyFieldsAccepted(t *testing.T) {
	s := NewSignUp(nav.Go)
	press(s, "tab", signUpSubmit)
	_, cmd := s.Update(keyMsg("enter"))
	assert.NotNil(t, cmd)
	assert.Empty(t, s.Name())
	assert.Empty(t, s.Email())
	assert.Empty(t, s.Password())
}

func TestSignUp_ViewContent(t *testing.T) {
	view := NewSignUp(nav.Go).View()
	for _, want := range []string{
		"Create", "Account", "Name", "Email", "Password", "→",
		"Forget your password? Recover it",
	} {
		assert.Contains(t, view, want)
	}
}
