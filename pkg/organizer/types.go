package organizer

// Options control a single organize run.
type Options struct {
	// Quiet suppresses per-file diagnostics on stderr.
	Quiet bool

	// NoReport suppresses the non-standard filename report.
	NoReport bool

	// ReportDir overrides the directory the non-standard report is
	// written to. Empty means the parent of the source directory.
	ReportDir string
}

// Summary aggregates the counters of one organize run. All fields are
// computed fresh per run; nothing persists across invocations beyond
// the filesystem side effects themselves.
type Summary struct {
	TotalFiles   int
	MovedFiles   int
	SkippedFiles int

	// CreatedFolders holds the DateKeys whose folders were created by
	// this run. Folders that already existed are reused silently and
	// not recorded here.
	CreatedFolders map[string]bool

	// NonStandard lists filenames that yielded a date but fail the
	// standard naming convention, in encounter order.
	NonStandard []string

	// ReportPath is set when a non-standard report was written.
	ReportPath string
}

// Entry is one classified directory entry from Scan.
type Entry struct {
	Name     string
	DateKey  string
	Standard bool
	Matched  bool
}
