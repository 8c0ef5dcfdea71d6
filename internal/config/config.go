// Package config holds CLI settings and the per-project configuration file
package config

import (
	"io"
	"os"

	"github.com/bethropolis/eolinuxify/internal/ignore"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// ProjectFileName is the optional project configuration file at the root
const ProjectFileName = "eolinuxify.json"

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir     string
	ProjectFile string
	IgnoreFile  string

	// Discovery settings
	UseGit   bool
	Excludes []string

	// Fix settings
	Yes    bool
	DryRun bool

	// Logging settings
	Verbose      bool
	Quiet        bool
	LogLevel     string
	NoColor      bool
	UseColors    bool
	ShowSkipped  bool
	ShowProgress bool

	// Interactive is false when stdin cannot answer the confirmation prompt
	Interactive bool

	Version string
}

// New creates a Config with default values
func New() *Config {
	return &Config{
		RootDir:    ".",
		IgnoreFile: ignore.DefaultFileName,
		LogLevel:   "",
		Version:    "dev",
	}
}

// BindFlags registers the command-line flags on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.RootDir, "dir", c.RootDir, "The project root to scan")
	fs.StringVar(&c.ProjectFile, "config", c.ProjectFile, "Project config file (default <dir>/"+ProjectFileName+")")
	fs.StringVar(&c.IgnoreFile, "ignore-file", c.IgnoreFile, "Per-directory ignore file name")
	fs.BoolVar(&c.UseGit, "git", c.UseGit, "List files with 'git ls-files' instead of walking the tree")
	fs.StringArrayVar(&c.Excludes, "exclude", c.Excludes, "Additional exclude glob, relative to the root (repeatable)")
	fs.BoolVarP(&c.Yes, "yes", "y", c.Yes, "Fix files without asking for confirmation")
	fs.BoolVar(&c.DryRun, "dry-run", c.DryRun, "Only report files with CRLF line endings")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Enable debug logging")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "Only log warnings and errors")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Set the logging level (debug, info, warn, error, none)")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable color output")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", c.ShowSkipped, "List pruned files/directories and reasons at the end")
	fs.BoolVar(&c.ShowProgress, "progress", c.ShowProgress, "Show discovery progress on stderr")
}

// Finalize derives settings that depend on the environment. Colors follow
// out; in is interactive unless it is a file that is not a terminal.
func (c *Config) Finalize(in io.Reader, out *os.File) {
	c.UseColors = !c.NoColor && out != nil && isTerminal(out)
	c.Interactive = true
	if f, ok := in.(*os.File); ok {
		c.Interactive = IsInteractive(f)
	}
}

// EffectiveLogLevel resolves --log-level, --verbose and --quiet, in that order
func (c *Config) EffectiveLogLevel() string {
	switch {
	case c.LogLevel != "":
		return c.LogLevel
	case c.Verbose:
		return "debug"
	case c.Quiet:
		return "warn"
	default:
		return "info"
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return f != nil && isTerminal(f)
}
