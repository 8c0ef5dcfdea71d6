package eol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	return path
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lf only", "a\nb\n", "a\nb\n"},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"mixed", "a\r\nb\nc\r\n", "a\nb\nc\n"},
		{"lone cr kept", "a\rb\r\n", "a\rb\n"},
		{"empty", "", ""},
		{"unicode", "héllo\r\nwörld", "héllo\nwörld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.False(t, Contains(got))

			again, err := Normalize(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestNormalizeRejectsInvalidUTF8(t *testing.T) {
	_, err := Normalize([]byte{'a', '\r', '\n', 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrNotUTF8)
}

func TestHasCRLF(t *testing.T) {
	has, err := HasCRLF(writeFile(t, "x\r\ny\n", 0o644))
	require.NoError(t, err)
	assert.True(t, has)

	has, err = HasCRLF(writeFile(t, "x\ny\n", 0o644))
	require.NoError(t, err)
	assert.False(t, has)

	_, err = HasCRLF(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFixMixedFile(t *testing.T) {
	path := writeFile(t, "one\r\ntwo\nthree\r\n", 0o640)

	require.NoError(t, Fix(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(content))

	require.NoError(t, Fix(path))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, again)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestFixWithoutCRLFLeavesBytes(t *testing.T) {
	original := "plain\nfile\n"
	path := writeFile(t, original, 0o644)

	require.NoError(t, Fix(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestFixInvalidUTF8LeavesFile(t *testing.T) {
	original := []byte{'a', '\r', '\n', 0xff}
	path := filepath.Join(t.TempDir(), "bin.dat")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	err := Fix(path)
	assert.ErrorIs(t, err, ErrNotUTF8)
	assert.Contains(t, err.Error(), path)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, content)
}

func TestRunLock(t *testing.T) {
	root := t.TempDir()

	lock, err := AcquireRunLock(root)
	require.NoError(t, err)

	_, err = AcquireRunLock(root)
	assert.ErrorIs(t, err, ErrLocked)

	other, err := AcquireRunLock(t.TempDir())
	require.NoError(t, err, "different roots use different locks")
	require.NoError(t, other.Release())

	require.NoError(t, lock.Release())
	again, err := AcquireRunLock(root)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
