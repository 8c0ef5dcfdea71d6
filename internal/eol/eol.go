// Package eol detects and rewrites CRLF line endings
package eol

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
)

// ErrNotUTF8 is returned when a file selected for fixing is not valid UTF-8
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// Contains reports whether content has at least one CRLF sequence
func Contains(content []byte) bool {
	return bytes.Contains(content, crlf)
}

// HasCRLF reads the file at path and reports whether it contains CRLF
func HasCRLF(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("eol: failed to read '%s': %w", path, err)
	}
	return Contains(content), nil
}

// Normalize replaces every CRLF in content with LF. Content must be UTF-8;
// a lone CR is left alone.
func Normalize(content []byte) ([]byte, error) {
	if !utf8.Valid(content) {
		return nil, ErrNotUTF8
	}
	if !Contains(content) {
		return content, nil
	}
	return bytes.ReplaceAll(content, crlf, lf), nil
}

// Fix rewrites the file at path in place with CRLF replaced by LF.
// Files without CRLF are not written. The file mode is preserved.
func Fix(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("eol: failed to stat '%s': %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("eol: failed to read '%s': %w", path, err)
	}
	if !Contains(content) {
		return nil
	}

	normalized, err := Normalize(content)
	if err != nil {
		return fmt.Errorf("eol: cannot normalize '%s': %w", path, err)
	}
	if err := os.WriteFile(path, normalized, info.Mode().Perm()); err != nil {
		return fmt.Errorf("eol: failed to write '%s': %w", path, err)
	}
	return nil
}
