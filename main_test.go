package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "  dashapp dev\n", out.String())
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level", "loud"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extra"})

	assert.Error(t, root.Execute())
}

func TestRootCmd_Flags(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"log-file", "log-level", "no-mouse", "inline"} {
		assert.NotNil(t, root.Flag(name), name)
	}
}
