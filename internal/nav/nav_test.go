package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHost_StartsOnDashboard(t *testing.T) {
	h := NewHost()
	assert.Equal(t, Dashboard, h.Current())

	var zero Host
	assert.Equal(t, Dashboard, zero.Current())
}

func TestNavigate_DashboardFirstIsNoop(t *testing.T) {
	h := NewHost()
	require.NoError(t, h.Navigate(Dashboard))
	assert.Equal(t, Dashboard, h.Current())
}

func TestNavigate_LastTargetWins(t *testing.T) {
	sequences := [][]Screen{
		{Login},
		{Login, SignUp},
		{SignUp, Dashboard, Login},
		{Login, Login, Login},
		{SignUp, SignUp, Dashboard, SignUp},
	}
	for _, seq := range sequences {
		h := NewHost()
		for _, s := range seq {
			require.NoError(t, h.Navigate(s))
		}
		assert.Equal(t, seq[len(seq)-1], h.Current(), "sequence %v", seq)
	}
}

func TestNavigate_InvalidScreen(t *testing.T) {
	h := NewHost()
	require.NoError(t, h.Navigate(Login))

	for _, bad := range []Screen{-1, 3, 42} {
		err := h.Navigate(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidScreen), "got %v", err)
		assert.Equal(t, Login, h.Current(), "state must not change on %d", bad)
	}
}

func TestTransition(t *testing.T) {
	to, ok := Transition(Dashboard, AvatarTap)
	assert.True(t, ok)
	assert.Equal(t, Login, to)

	to, ok = Transition(Login, RegisterTap)
	assert.True(t, ok)
	assert.Equal(t, SignUp, to)

	// SignUp is a dead end.
	for _, tr := range []Trigger{AvatarTap, RegisterTap} {
		to, ok = Transition(SignUp, tr)
		assert.False(t, ok)
		assert.Equal(t, SignUp, to)
	}

	_, ok = Transition(Dashboard, RegisterTap)
	assert.False(t, ok)
	_, ok = Transition(Login, AvatarTap)
	assert.False(t, ok)
}

func TestGo(t *testing.T) {
	msg := Go(SignUp)()
	g, ok := msg.(GoMsg)
	require.True(t, ok, "expected GoMsg, got %T", msg)
	assert.Equal(t, SignUp, g.Screen)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "dashboard", Dashboard.String())
	assert.Equal(t, "login", Login.String())
	assert.Equal(t, "signup", SignUp.String())
	assert.Equal(t, "screen(7)", Screen(7).String())
	assert.False(t, Screen(7).Valid())
	assert.True(t, SignUp.Valid())
}
