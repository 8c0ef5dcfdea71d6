package walker

import (
	"context"

	"github.com/bethropolis/eolinuxify/internal/ignore"
	"github.com/bethropolis/eolinuxify/internal/utils"
)

// WalkOptions configures the behavior of Discover
type WalkOptions struct {
	Logger         utils.Logger
	Context        context.Context
	IgnoreFileName string
	ProgressFn     ProgressCallback
}

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(stats ProgressStats)

// ProgressStats holds statistics about the walk progress
type ProgressStats struct {
	Dirs       int    // Directories entered so far
	Files      int    // Files collected so far
	Skipped    int    // Entries pruned so far
	CurrentDir string // Directory being entered (relative to root)
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:         utils.NoopLogger{},
		Context:        context.Background(),
		IgnoreFileName: ignore.DefaultFileName,
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithContext sets a context checked before each directory is entered
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

// WithIgnoreFileName sets the per-directory ignore file name
func WithIgnoreFileName(name string) Option {
	return func(opts *WalkOptions) {
		if name != "" {
			opts.IgnoreFileName = name
		}
	}
}

// WithProgress adds a progress callback invoked once per directory
func WithProgress(fn ProgressCallback) Option {
	return func(o *WalkOptions) {
		o.ProgressFn = fn
	}
}
