// Package setup turns configuration into a ready-to-run discovery step
package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/eolinuxify/internal/gitls"
	"github.com/bethropolis/eolinuxify/internal/utils"
	"github.com/bethropolis/eolinuxify/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// Discoverer lists the project files below a root, relative to it
type Discoverer func(ctx context.Context, root string) ([]string, []walker.SkippedItem, error)

// DiscoveryConfig holds all parameters needed to configure discovery
type DiscoveryConfig struct {
	UseGit       bool
	IgnoreFile   string
	ShowProgress bool
	Quiet        bool
	Logger       utils.Logger
	GitClient    *gitls.Client
}

// ConfigureDiscovery picks git listing or the ignore-aware walker
func ConfigureDiscovery(cfg DiscoveryConfig, infoLog InfoLogger) Discoverer {
	logger := utils.OrNoop(cfg.Logger)

	if cfg.UseGit {
		client := cfg.GitClient
		if client == nil {
			client = gitls.New(gitls.WithLogger(logger))
		}
		infoLog("Listing files with git.")
		return func(ctx context.Context, root string) ([]string, []walker.SkippedItem, error) {
			if err := client.EnsureRepository(ctx, root); err != nil {
				return nil, nil, err
			}
			files, err := client.ListFiles(ctx, root)
			return files, nil, err
		}
	}

	infoLog("Walking the tree, honoring %s files.", cfg.IgnoreFile)
	walkOptions := []walker.Option{
		walker.WithLogger(logger),
		walker.WithIgnoreFileName(cfg.IgnoreFile),
	}

	// Add progress option if enabled
	if cfg.ShowProgress && !cfg.Quiet {
		logger.Debug("Progress display enabled")
		walkOptions = append(walkOptions, walker.WithProgress(func(stats walker.ProgressStats) {
			path := stats.CurrentDir
			if len(path) > 40 {
				path = "..." + path[len(path)-37:]
			}
			// Print with carriage return to overwrite previous line
			fmt.Fprintf(os.Stderr, "\rScanning: %-40s | Dirs: %d | Files: %d | Skipped: %d",
				path, stats.Dirs, stats.Files, stats.Skipped)
		}))
	}

	return func(ctx context.Context, root string) ([]string, []walker.SkippedItem, error) {
		opts := append(append([]walker.Option{}, walkOptions...), walker.WithContext(ctx))
		files, skipped, err := walker.Discover(root, opts...)
		if cfg.ShowProgress && !cfg.Quiet {
			fmt.Fprintln(os.Stderr)
		}
		return files, skipped, err
	}
}
