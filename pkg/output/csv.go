package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/snlarchive/datesort/pkg/organizer"
)

// WriteEntriesCSV writes scan results as CSV with a header row. The
// date and standard columns are empty for files without a usable date.
func WriteEntriesCSV(w io.Writer, entries []organizer.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"filename", "date", "standard"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		record := []string{e.Name, "", ""}
		if e.Matched {
			record[1] = e.DateKey
			record[2] = strconv.FormatBool(e.Standard)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
