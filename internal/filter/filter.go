// Package filter applies the configured exclude globs to a discovered file list
package filter

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter drops every file whose path equals a filesystem match of one of
// patterns. Patterns are resolved relative to root and may use "**".
// A pattern matching a directory excludes that directory entry only, not
// the files below it.
//
// Files are root-relative; the returned slice keeps their order.
func Filter(files []string, root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return files, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to get absolute path for '%s': %w", root, err)
	}
	excluded, err := Resolve(absRoot, patterns)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(files))
	for _, file := range files {
		if _, ok := excluded[filepath.Join(absRoot, file)]; ok {
			continue
		}
		kept = append(kept, file)
	}
	return kept, nil
}

// Resolve expands patterns against the filesystem under root and returns
// the set of matched absolute paths.
func Resolve(root string, patterns []string) (map[string]struct{}, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to get absolute path for '%s': %w", root, err)
	}

	matches := make(map[string]struct{})
	fsys := os.DirFS(absRoot)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		var found []string
		if rel, inside := insideRoot(pattern); inside {
			found, err = doublestar.Glob(fsys, rel)
			for i := range found {
				found[i] = filepath.Join(absRoot, filepath.FromSlash(found[i]))
			}
		} else {
			target := pattern
			if !filepath.IsAbs(target) {
				target = filepath.Join(absRoot, target)
			}
			found, err = doublestar.FilepathGlob(target)
		}
		if err != nil {
			return nil, fmt.Errorf("filter: invalid exclude pattern %q: %w", pattern, err)
		}

		for _, match := range found {
			matches[filepath.Clean(match)] = struct{}{}
		}
	}
	return matches, nil
}

// insideRoot reports whether pattern stays below the root, returning it in
// the slash-separated form io/fs expects.
func insideRoot(pattern string) (string, bool) {
	if filepath.IsAbs(pattern) {
		return "", false
	}
	rel := path.Clean(filepath.ToSlash(pattern))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
