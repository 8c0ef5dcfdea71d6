// Package ignore provides per-directory ignore rules for project discovery
//
// Each directory's ignore file is repaired (see Repair), compiled into a
// Rules value and pushed onto a Chain. A Chain answers whether a path is
// excluded by any directory between the walk root and the path itself.
// The version-control metadata directory is excluded at every level.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileName is the ignore file looked up in every directory
const DefaultFileName = ".gitignore"

// Load reads, repairs and compiles the ignore file named fileName inside dir.
// It returns nil rules and a nil error when the directory has no ignore file.
func Load(dir, fileName string, opts ...Option) (*Rules, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if fileName == "" {
		fileName = DefaultFileName
	}

	path := filepath.Join(dir, fileName)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("ignore: failed to stat ignore file '%s': %w", path, err)
	}
	if info.IsDir() {
		options.logger.Warn("ignore.Load: %q is a directory, treating it as absent", path)
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to read ignore file '%s': %w", path, err)
	}

	options.logger.Debug("ignore.Load: Compiling %s", path)
	options.source = path
	return compile(dir, Repair(string(raw)), options), nil
}
