package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestParseLevel_EnvFallback(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	got, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, got)

	// Explicit name beats the env.
	got, err = ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, got)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown", "screen", "login")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "screen=login")
}

func TestSetup_WritesFileWithSession(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "app.log")
	l, closeFn, err := Setup(path, slog.LevelDebug)
	require.NoError(t, err)
	l.Debug("mounted")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mounted")
	assert.Contains(t, string(data), "session=")
}

func TestSetup_NoPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l, closeFn, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)
	l.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestSetup_BadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "app.log"), slog.LevelInfo)
	assert.Error(t, err)
}
