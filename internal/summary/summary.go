// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/projct/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Stats is what a run reports when it finishes
type Stats struct {
	OutputFile string
	FileCount  int64
	Filtered   int // files dropped by include/exclude patterns
	Duration   time.Duration
}

// DisplayResults shows the end results of a run
func DisplayResults(logger Logger, stats Stats, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Wrote %d files to %s.", stats.FileCount, stats.OutputFile)
	if stats.Filtered > 0 {
		logger.Info("%d files left out by include/exclude patterns.", stats.Filtered)
	}
	logger.Info("Done in %v.", stats.Duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}

	items := make([]walker.SkippedItem, len(skippedItems))
	copy(items, skippedItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50, // Max width for path column
			item.Path,
			item.Reason,
		)
	}
	infoLog("--- End Skipped Items ---")
}
