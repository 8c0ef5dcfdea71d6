package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandFixesWithYes(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "win.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644))

	out, err := execute(t, "", "--dir", root, "-y", "--log-level", "none", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "win.txt")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestRootCommandNonTerminalStdinWithoutYes(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "win.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n"), 0o644))

	stdin, err := os.Open(path)
	require.NoError(t, err)
	defer stdin.Close()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(stdin)
	cmd.SetArgs([]string{"--dir", root, "--log-level", "none", "--no-color"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "rerun with --yes")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\r\n", string(content))
}

func TestRootCommandRejectsArgs(t *testing.T) {
	_, err := execute(t, "", "extra")
	assert.Error(t, err)
}

func TestRootCommandUnknownLogLevel(t *testing.T) {
	_, err := execute(t, "", "--dir", t.TempDir(), "--log-level", "chatty")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
