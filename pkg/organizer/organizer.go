package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snlarchive/datesort/pkg/dateclass"
	"github.com/snlarchive/datesort/pkg/fileutil"
)

// ErrSourceNotFound is returned when the source path is missing or not
// a directory.
var ErrSourceNotFound = errors.New("source directory not found")

// Organize moves every dated file directly under sourceDir into a
// sourceDir/YYYY-MM-DD subdirectory and returns the run counters.
// Entries are processed in the order the OS lists them; that order is
// deliberately not sorted and not guaranteed stable across platforms.
// Subdirectories are skipped, never descended into, so a second run
// over an already-organized directory finds nothing to move.
//
// Organize halts on the first failed move and returns the error along
// with the counters accumulated so far; files moved before the failure
// stay where they landed. Files whose names carry no recognizable date
// are counted and reported, never fatal.
func Organize(sourceDir string, opts Options) (*Summary, error) {
	sourceDir = filepath.Clean(sourceDir)

	entries, err := readEntries(sourceDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{CreatedFolders: make(map[string]bool)}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		filename := entry.Name()
		summary.TotalFiles++

		class, err := dateclass.Classify(filename)
		if err != nil {
			summary.SkippedFiles++
			if !opts.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: could not extract date from '%s', skipping\n", filename)
			}
			continue
		}

		if !class.Standard {
			summary.NonStandard = append(summary.NonStandard, filename)
		}

		destDir := filepath.Join(sourceDir, class.DateKey)
		if !fileutil.FileExists(destDir) {
			if err := fileutil.EnsureDirectoryExists(destDir); err != nil {
				return summary, fmt.Errorf("failed to create folder %s: %w", destDir, err)
			}
			summary.CreatedFolders[class.DateKey] = true
			if !opts.Quiet {
				fmt.Fprintf(os.Stderr, "Created folder: %s\n", class.DateKey)
			}
		}

		srcPath := filepath.Join(sourceDir, filename)
		if err := fileutil.MoveFile(srcPath, filepath.Join(destDir, filename)); err != nil {
			return summary, err
		}
		summary.MovedFiles++
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "Moved: %s -> %s/\n", filename, class.DateKey)
		}
	}

	if len(summary.NonStandard) > 0 && !opts.NoReport {
		reportPath := ReportPath(sourceDir, opts.ReportDir)
		if err := writeReport(reportPath, sourceDir, summary.NonStandard); err != nil {
			return summary, err
		}
		summary.ReportPath = reportPath
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "Reported %d non-standard filenames to %s\n", len(summary.NonStandard), reportPath)
		}
	}

	return summary, nil
}

// Scan classifies every file directly under sourceDir without touching
// the filesystem. Enumeration rules are the same as Organize.
func Scan(sourceDir string) ([]Entry, error) {
	sourceDir = filepath.Clean(sourceDir)

	entries, err := readEntries(sourceDir)
	if err != nil {
		return nil, err
	}

	var results []Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		result := Entry{Name: entry.Name()}
		if class, err := dateclass.Classify(entry.Name()); err == nil {
			result.Matched = true
			result.DateKey = class.DateKey
			result.Standard = class.Standard
		}
		results = append(results, result)
	}
	return results, nil
}

// readEntries lists the direct entries of sourceDir. os.ReadDir sorts
// by name; File.ReadDir does not, and the unsorted OS order is kept on
// purpose.
func readEntries(sourceDir string) ([]os.DirEntry, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceDir)
		}
		return nil, fmt.Errorf("failed to stat source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, sourceDir)
	}

	dir, err := os.Open(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory %s: %w", sourceDir, err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", sourceDir, err)
	}
	return entries, nil
}
