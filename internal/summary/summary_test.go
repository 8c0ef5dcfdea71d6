package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/eolinuxify/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, Result{Discovered: 10, Excluded: 2, WithCRLF: 3, Fixed: 3, Duration: 1500 * time.Microsecond})

	assert.Contains(t, log.lines, "Discovered 10 files (2 excluded by configuration).")
	assert.Contains(t, log.lines, "Fixed 3 files, 0 failed.")
	assert.Contains(t, log.lines, "Done in 2ms.")
}

func TestDisplayResultsWithoutFixes(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, Result{Discovered: 1})
	for _, line := range log.lines {
		assert.NotContains(t, line, "Fixed")
	}
}

func TestDisplaySkippedItemsSorted(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, []walker.SkippedItem{
		{Path: "node_modules", Reason: walker.ReasonIgnoredRule, IsDir: true},
		{Path: ".git", Reason: walker.ReasonIgnoredVCS, IsDir: true},
		{Path: "debug.log", Reason: walker.ReasonIgnoredRule},
	}, &out)

	assert.Equal(t,
		fmt.Sprintf("Skipped DIR : %-50s [Ignored (Version Control Metadata)]\n", ".git")+
			fmt.Sprintf("Skipped FILE: %-50s [Ignored (Ignore File Rule)]\n", "debug.log")+
			fmt.Sprintf("Skipped DIR : %-50s [Ignored (Ignore File Rule)]\n", "node_modules"),
		out.String())
	assert.Equal(t, "--- Skipped Items (3) ---", log.lines[0])
}

func TestDisplaySkippedItemsKeepsLongPaths(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	long := strings.Repeat("deeply/nested/", 6) + "generated.log"
	require.Greater(t, len(long), 50)

	DisplaySkippedItems(log, []walker.SkippedItem{
		{Path: long, Reason: walker.ReasonIgnoredRule},
		{Path: "a.log", Reason: walker.ReasonIgnoredRule},
	}, &out)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Skipped FILE: a.log"+strings.Repeat(" ", 45)+" [Ignored (Ignore File Rule)]", lines[0])
	assert.Equal(t, "Skipped FILE: "+long+" [Ignored (Ignore File Rule)]", lines[1])
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, nil, &out)
	assert.Empty(t, out.String())
	assert.Contains(t, log.lines, "No items were skipped.")
}
