package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bethropolis/eolinuxify/internal/config"
	"github.com/bethropolis/eolinuxify/internal/eol"
	"github.com/bethropolis/eolinuxify/internal/filter"
	"github.com/bethropolis/eolinuxify/internal/logger"
	"github.com/bethropolis/eolinuxify/internal/printer"
	"github.com/bethropolis/eolinuxify/internal/setup"
	"github.com/bethropolis/eolinuxify/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	printer *printer.Printer
	Output  io.Writer
	Errors  io.Writer
}

// New creates a new App instance writing the report to stdout and logs to stderr
func New(cfg *config.Config) (*App, error) {
	return NewWithIO(cfg, os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO creates an App bound to the given streams
func NewWithIO(cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(errOut, logger.LevelInfo, cfg.UseColors)
	if err := log.SetLevel(cfg.EffectiveLogLevel()); err != nil {
		return nil, err
	}

	p := printer.New().
		WithOutput(out).
		WithInput(in).
		WithColors(cfg.UseColors)

	return &App{
		cfg:     cfg,
		log:     log,
		printer: p,
		Output:  out,
		Errors:  errOut,
	}, nil
}

// Run discovers project files, reports those containing CRLF and, once
// confirmed, rewrites them with LF line endings.
//
// Discovery and configuration errors abort the run. Scan and fix errors are
// reported per file and the run continues. Declining the prompt is not an error.
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()
	result := summary.Result{}

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Discovery: git=%v, ignore file=%s", a.cfg.UseGit, a.cfg.IgnoreFile)

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}
	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root directory '%s' not found", absRootDir)
		}
		return fmt.Errorf("could not access root directory '%s': %w", absRootDir, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path '%s' is not a directory", absRootDir)
	}

	// --- Discover ---
	discover := setup.ConfigureDiscovery(setup.DiscoveryConfig{
		UseGit:       a.cfg.UseGit,
		IgnoreFile:   a.cfg.IgnoreFile,
		ShowProgress: a.cfg.ShowProgress,
		Quiet:        a.cfg.Quiet,
		Logger:       a.log,
	}, a.log.Debug)

	a.log.Info("Scanning directory: %s", absRootDir)
	files, skippedItems, err := discover(ctx, absRootDir)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}
	result.Discovered = len(files)

	// --- Exclude ---
	project, err := config.LoadProject(a.cfg.ProjectPath(absRootDir))
	if err != nil {
		return err
	}
	excludes := project.Excludes(a.cfg.Excludes...)
	if len(excludes) > 0 {
		a.log.Debug("Exclude patterns: %v", excludes)
	}
	files, err = filter.Filter(files, absRootDir, excludes)
	if err != nil {
		return err
	}
	result.Excluded = result.Discovered - len(files)
	sort.Strings(files)

	if a.cfg.ShowSkipped && len(skippedItems) > 0 {
		defer summary.DisplaySkippedItems(a.log, skippedItems, a.Errors)
	}

	// --- Scan ---
	var found []string
	for _, file := range files {
		has, err := eol.HasCRLF(filepath.Join(absRootDir, file))
		if err != nil {
			result.ScanErrors++
			a.printer.ScanFailed(file, err)
			continue
		}
		if has {
			found = append(found, file)
		}
	}
	result.WithCRLF = len(found)

	defer func() {
		result.Duration = time.Since(startTime)
		summary.DisplayResults(a.log, result)
	}()

	if len(found) == 0 {
		if result.ScanErrors > 0 {
			a.printer.ScanIncomplete(result.ScanErrors)
		} else {
			a.printer.AllClean()
		}
		return nil
	}
	a.printer.Found(found)

	if a.cfg.DryRun {
		a.log.Info("Dry run, no files were changed.")
		return nil
	}
	if !a.cfg.Yes {
		if !a.cfg.Interactive {
			a.printer.NotInteractive()
			a.printer.Aborting()
			return nil
		}
		if !a.printer.Confirm("Do you want to fix these files?") {
			a.printer.Aborting()
			return nil
		}
	}

	// --- Fix ---
	lock, err := eol.AcquireRunLock(absRootDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			a.log.Warn("%v", err)
		}
	}()

	for _, file := range found {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.printer.FixStarted(file)
		if err := eol.Fix(filepath.Join(absRootDir, file)); err != nil {
			result.FixErrors++
			a.printer.FixFailed(err)
			continue
		}
		result.Fixed++
		a.printer.FixDone()
	}
	return nil
}
