// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/eolinuxify/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Result counts what a run did
type Result struct {
	Discovered int
	Excluded   int
	WithCRLF   int
	ScanErrors int
	Fixed      int
	FixErrors  int
	Duration   time.Duration
}

// DisplayResults logs the end results of a run
func DisplayResults(logger Logger, result Result) {
	logger.Info("Discovered %d files (%d excluded by configuration).", result.Discovered, result.Excluded)
	logger.Info("Files with CRLF: %d, scan errors: %d.", result.WithCRLF, result.ScanErrors)
	if result.Fixed > 0 || result.FixErrors > 0 {
		logger.Info("Fixed %d files, %d failed.", result.Fixed, result.FixErrors)
	}
	logger.Info("Done in %v.", result.Duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints the items pruned during discovery
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
	} else {
		walker.SortSkipped(skippedItems)
		for _, item := range skippedItems {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			// Paths are padded to the column width, never cut
			fmt.Fprintf(output, "Skipped %s: %-*s [%s]\n",
				typeStr,
				50,
				item.Path,
				item.Reason,
			)
		}
	}
	logger.Info("--- End Skipped Items ---")
}
