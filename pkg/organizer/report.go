package organizer

import (
	"fmt"
	"path/filepath"

	"github.com/snlarchive/datesort/pkg/fileutil"
)

// ReportPath returns the path of the non-standard filename report for
// sourceDir: a sibling of the source directory named
// <base>_non_standard.txt, unless reportDir overrides the location.
func ReportPath(sourceDir, reportDir string) string {
	dir := reportDir
	if dir == "" {
		dir = filepath.Dir(sourceDir)
	}
	return filepath.Join(dir, filepath.Base(sourceDir)+"_non_standard.txt")
}

// writeReport overwrites the report file with a header line naming the
// source directory followed by one filename per line, in encounter
// order. An existing report is replaced wholesale; a run that finds no
// non-standard names writes nothing and leaves any prior report alone.
func writeReport(path, sourceDir string, names []string) error {
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, fmt.Sprintf("Non-standard filenames found in %s:", sourceDir))
	lines = append(lines, names...)

	if err := fileutil.WriteLinesToFile(path, lines); err != nil {
		return fmt.Errorf("failed to write non-standard report: %w", err)
	}
	return nil
}
