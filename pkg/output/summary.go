package output

import (
	"fmt"
	"io"

	"github.com/snlarchive/datesort/pkg/organizer"
)

// WriteSummary writes the run counters as a plain labeled block.
func WriteSummary(w io.Writer, summary *organizer.Summary) {
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "Total files processed: %d\n", summary.TotalFiles)
	fmt.Fprintf(w, "Files moved: %d\n", summary.MovedFiles)
	fmt.Fprintf(w, "Files skipped: %d\n", summary.SkippedFiles)
	fmt.Fprintf(w, "Folders created: %d\n", len(summary.CreatedFolders))
	fmt.Fprintf(w, "Non-standard filenames: %d\n", len(summary.NonStandard))
}

// WriteEntries writes one line per scanned entry: the filename, the
// folder it would move to, and whether the name is standard.
func WriteEntries(w io.Writer, entries []organizer.Entry) {
	for _, e := range entries {
		if !e.Matched {
			fmt.Fprintf(w, "%s: no date\n", e.Name)
			continue
		}
		fmt.Fprintf(w, "%s -> %s/ (%s)\n", e.Name, e.DateKey, standardLabel(e.Standard))
	}
}

func standardLabel(standard bool) string {
	if standard {
		return "standard"
	}
	return "non-standard"
}
