package summary

import (
	"bytes"
	"testing"
	"time"

	"github.com/bethropolis/projct/internal/utils"
	"github.com/bethropolis/projct/internal/walker"
	"github.com/stretchr/testify/assert"
)

func TestDisplayResults(t *testing.T) {
	log := &utils.MemoryLogger{}
	DisplayResults(log, Stats{OutputFile: "output.txt", FileCount: 3, Filtered: 2, Duration: 1500 * time.Microsecond}, false)

	assert.Equal(t, []string{
		"Wrote 3 files to output.txt.",
		"2 files left out by include/exclude patterns.",
		"Done in 2ms.",
	}, log.Messages("info"))
}

func TestDisplayResults_Quiet(t *testing.T) {
	log := &utils.MemoryLogger{}
	DisplayResults(log, Stats{FileCount: 1}, true)
	assert.Empty(t, log.Entries())
}

func TestDisplaySkippedItems(t *testing.T) {
	log := &utils.MemoryLogger{}
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "z.bin", Reason: walker.ReasonSkippedBinary},
		{Path: "build", Reason: walker.ReasonIgnoredRule, IsDir: true},
	}

	DisplaySkippedItems(log, items, &out, false)

	assert.Equal(t,
		"Skipped DIR : build [Ignored (Gitignore/Custom Rule)]\n"+
			"Skipped FILE: z.bin [Skipped (Binary File)]\n",
		out.String())
	assert.Equal(t, "z.bin", items[0].Path, "input order is left alone")
	assert.Equal(t, []string{"--- Skipped Items (2) ---", "--- End Skipped Items ---"}, log.Messages("INFO"))
}

func TestDisplaySkippedItems_None(t *testing.T) {
	log := &utils.MemoryLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, nil, &out, false)

	assert.Empty(t, out.String())
	assert.Contains(t, log.Messages("INFO"), "No items were skipped.")
}
