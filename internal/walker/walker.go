package walker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/eolinuxify/internal/ignore"
)

// walk holds the state of one Discover call
type walk struct {
	root    string
	options WalkOptions
	tracker *SkippedTracker
	files   []string
	dirs    int
}

// Discover walks the tree under rootDir and returns the paths, relative to
// rootDir, of every regular file not excluded by an ignore file or by the
// version-control metadata directory. Ignored directories are never listed.
//
// The order of the result is unspecified. Any I/O error aborts the walk and
// is returned with the offending path.
func Discover(rootDir string, opts ...Option) ([]string, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}
	info, err := os.Stat(absRootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: cannot access root '%s': %w", absRootDir, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("walker: root '%s' is not a directory", absRootDir)
	}

	w := &walk{
		root:    absRootDir,
		options: options,
		tracker: NewSkippedTracker(64),
	}

	options.Logger.Debug("walker.Discover started. Root: %s, ignore file: %s", absRootDir, options.IgnoreFileName)
	if err := w.visit(absRootDir, ignore.NewChain()); err != nil {
		return nil, w.tracker.Items(), err
	}
	options.Logger.Debug("walker.Discover finished: %d dirs, %d files", w.dirs, len(w.files))
	return w.files, w.tracker.Items(), nil
}

// visit loads dir's ignore file, extends the parent chain with it and
// collects or descends into every entry the extended chain does not ignore.
func (w *walk) visit(dir string, parent *ignore.Chain) error {
	if err := w.options.Context.Err(); err != nil {
		return err
	}
	w.dirs++
	w.reportProgress(dir)

	rules, err := ignore.Load(dir, w.options.IgnoreFileName, ignore.WithLogger(w.options.Logger))
	if err != nil {
		return fmt.Errorf("walker: %w", err)
	}
	chain := parent.Push(rules)
	w.options.Logger.Debug("Walker: Entering %q (%d rule levels)", w.rel(dir), chain.Depth())

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("walker: failed to read directory '%s': %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()

		if chain.Ignored(path, isDir) {
			reason := ReasonIgnoredRule
			if ignore.IsVCSDir(entry.Name()) {
				reason = ReasonIgnoredVCS
			}
			w.options.Logger.Debug("Walker: Pruned %q (%s)", w.rel(path), reason)
			w.tracker.Track(w.rel(path), reason, isDir)
			continue
		}

		if isDir {
			if err := w.visit(path, chain); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			w.options.Logger.Debug("Walker: Skipping %q: not a regular file", w.rel(path))
			w.tracker.Track(w.rel(path), ReasonSkippedNotRegular, false)
			continue
		}

		w.files = append(w.files, w.rel(path))
	}
	return nil
}

func (w *walk) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

func (w *walk) reportProgress(dir string) {
	if w.options.ProgressFn == nil {
		return
	}
	w.options.ProgressFn(ProgressStats{
		Dirs:       w.dirs,
		Files:      len(w.files),
		Skipped:    w.tracker.Len(),
		CurrentDir: w.rel(dir),
	})
}
