package dateclass

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoDateMatch is returned when a filename contains no recognizable
// date sequence.
var ErrNoDateMatch = errors.New("no date found in filename")

var (
	// lenientPattern tolerates the legacy names in the archive: an
	// abbreviation of any length and case, dashes or underscores as
	// separators, and 1-digit month or day values. The trailing
	// separator after the day is required.
	lenientPattern = regexp.MustCompile(`([A-Za-z]+)[_-](\d{4})[_-](\d{1,2})[_-](\d{1,2})[_-]`)

	// strictPattern is the archive convention: exactly 3 uppercase
	// letters and underscore-separated, zero-padded date fields.
	strictPattern = regexp.MustCompile(`[A-Z]{3}_\d{4}_\d{2}_\d{2}_`)
)

// Classify extracts a normalized date from filename. The lenient
// pattern decides whether a usable date exists at all; the strict
// pattern and the abbreviation/separator checks decide Standard. Both
// patterns are searched against the full original filename, never
// against each other's capture groups, so a name can yield a DateKey
// while still failing the standard check.
//
// Date values are not calendar-validated: month 13 is accepted and
// padded like any other value.
func Classify(filename string) (*Classification, error) {
	m := lenientPattern.FindStringSubmatch(filename)
	if m == nil {
		return nil, ErrNoDateMatch
	}

	abbrev, year, month, day := m[1], m[2], m[3], m[4]

	return &Classification{
		DateKey:  year + "-" + zeroPad2(month) + "-" + zeroPad2(day),
		Abbrev:   abbrev,
		Standard: isStandard(abbrev, filename),
	}, nil
}

// isStandard checks the XXX_YYYY_MM_DD_* convention: 3-uppercase-letter
// abbreviation, no dash anywhere in the filename, and the strict
// pattern found somewhere in the full name.
func isStandard(abbrev, filename string) bool {
	if len(abbrev) != 3 || !isUpperAlpha(abbrev) {
		return false
	}
	if strings.Contains(filename, "-") {
		return false
	}
	return strictPattern.MatchString(filename)
}

func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func zeroPad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
