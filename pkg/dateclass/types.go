package dateclass

// Classification is the result of matching a filename against the
// archive naming patterns.
type Classification struct {
	// DateKey is the normalized YYYY-MM-DD string used as the name of
	// the destination folder. Two filenames with the same DateKey land
	// in the same folder.
	DateKey string

	// Abbrev is the source-abbreviation token captured by the lenient
	// pattern (e.g. "FGL" in FGL_1858_12_25_0001.tif).
	Abbrev string

	// Standard reports whether the filename follows the archive
	// convention exactly: XXX_YYYY_MM_DD_* with a 3-uppercase-letter
	// abbreviation, underscores only, and zero-padded month and day.
	Standard bool
}
