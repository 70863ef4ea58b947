package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSourceDir creates root/FGL_1858 populated with the given files so
// the report lands inside root rather than the shared temp parent.
func newSourceDir(t *testing.T, files ...string) (root, sourceDir string) {
	t.Helper()
	root = t.TempDir()
	sourceDir = filepath.Join(root, "FGL_1858")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(sourceDir, name), []byte("scan data"), 0644))
	}
	return root, sourceDir
}

func TestOrganizeMovesFilesIntoDateFolders(t *testing.T) {
	root, sourceDir := newSourceDir(t,
		"FGL_1858_12_25_0001.tif",
		"FGL_1858_12_25_0002.tif",
		"SNL_1902_01_31_0001.tif",
		"fgl-1858-3-5-0004.tif",
		"readme.txt",
	)

	summary, err := Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalFiles)
	assert.Equal(t, 4, summary.MovedFiles)
	assert.Equal(t, 1, summary.SkippedFiles)
	assert.Len(t, summary.CreatedFolders, 3)
	assert.True(t, summary.CreatedFolders["1858-12-25"])
	assert.True(t, summary.CreatedFolders["1902-01-31"])
	assert.True(t, summary.CreatedFolders["1858-03-05"])
	assert.Equal(t, []string{"fgl-1858-3-5-0004.tif"}, summary.NonStandard)

	// Same DateKey means same destination folder.
	assert.FileExists(t, filepath.Join(sourceDir, "1858-12-25", "FGL_1858_12_25_0001.tif"))
	assert.FileExists(t, filepath.Join(sourceDir, "1858-12-25", "FGL_1858_12_25_0002.tif"))
	assert.FileExists(t, filepath.Join(sourceDir, "1902-01-31", "SNL_1902_01_31_0001.tif"))
	assert.FileExists(t, filepath.Join(sourceDir, "1858-03-05", "fgl-1858-3-5-0004.tif"))

	// Skipped file stays at the top level, moved originals are gone.
	assert.FileExists(t, filepath.Join(sourceDir, "readme.txt"))
	assert.NoFileExists(t, filepath.Join(sourceDir, "FGL_1858_12_25_0001.tif"))

	// Report sits next to the source directory.
	reportPath := filepath.Join(root, "FGL_1858_non_standard.txt")
	assert.Equal(t, reportPath, summary.ReportPath)
	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Non-standard filenames found in")
	assert.Equal(t, "fgl-1858-3-5-0004.tif", lines[1])
}

func TestOrganizeMissingSource(t *testing.T) {
	summary, err := Organize(filepath.Join(t.TempDir(), "no_such_dir"), Options{Quiet: true})
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestOrganizeSourceIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain_file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	summary, err := Organize(path, Options{Quiet: true})
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestOrganizeSecondRunFindsNothing(t *testing.T) {
	_, sourceDir := newSourceDir(t,
		"FGL_1858_12_25_0001.tif",
		"SNL_1902_01_31_0001.tif",
	)

	_, err := Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)

	// Date folders are directories now and must be skipped, not
	// descended into.
	summary, err := Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalFiles)
	assert.Equal(t, 0, summary.MovedFiles)
	assert.Equal(t, 0, summary.SkippedFiles)
	assert.Empty(t, summary.CreatedFolders)
	assert.Empty(t, summary.NonStandard)
}

func TestOrganizeReusesExistingDateFolders(t *testing.T) {
	_, sourceDir := newSourceDir(t, "FGL_1858_12_25_0001.tif")
	require.NoError(t, os.Mkdir(filepath.Join(sourceDir, "1858-12-25"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(sourceDir, "1858-12-25", "FGL_1858_12_25_0000.tif"),
		[]byte("earlier run"), 0644))

	summary, err := Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)

	// Existing folder is reused silently and its contents survive.
	assert.Empty(t, summary.CreatedFolders)
	assert.Equal(t, 1, summary.MovedFiles)
	assert.FileExists(t, filepath.Join(sourceDir, "1858-12-25", "FGL_1858_12_25_0000.tif"))
	assert.FileExists(t, filepath.Join(sourceDir, "1858-12-25", "FGL_1858_12_25_0001.tif"))
}

func TestOrganizeHaltsOnFirstMoveFailure(t *testing.T) {
	_, sourceDir := newSourceDir(t, "FGL_1858_12_25_0001.tif")

	// A plain file squatting on the DateKey path makes the move fail
	// without touching permissions.
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "1858-12-25"), []byte("in the way"), 0644))

	summary, err := Organize(sourceDir, Options{Quiet: true})
	require.Error(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.MovedFiles)
	assert.FileExists(t, filepath.Join(sourceDir, "FGL_1858_12_25_0001.tif"))
}

func TestOrganizeReportOverwriteAndRetention(t *testing.T) {
	root, sourceDir := newSourceDir(t, "fgl-1858-3-5-0001.tif")
	reportPath := filepath.Join(root, "FGL_1858_non_standard.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte("stale content from an older run\nstale.tif\n"), 0644))

	summary, err := Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)
	require.Equal(t, reportPath, summary.ReportPath)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
	assert.Contains(t, string(content), "fgl-1858-3-5-0001.tif")

	// A later run with nothing non-standard writes no report and does
	// not delete the previous one.
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "FGL_1858_12_25_0001.tif"), []byte("x"), 0644))
	summary, err = Organize(sourceDir, Options{Quiet: true})
	require.NoError(t, err)
	assert.Empty(t, summary.NonStandard)
	assert.Empty(t, summary.ReportPath)
	assert.FileExists(t, reportPath)
}

func TestOrganizeNoReportOption(t *testing.T) {
	root, sourceDir := newSourceDir(t, "fgl-1858-3-5-0001.tif")

	summary, err := Organize(sourceDir, Options{Quiet: true, NoReport: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"fgl-1858-3-5-0001.tif"}, summary.NonStandard)
	assert.Empty(t, summary.ReportPath)
	assert.NoFileExists(t, filepath.Join(root, "FGL_1858_non_standard.txt"))
}

func TestOrganizeReportDirOverride(t *testing.T) {
	_, sourceDir := newSourceDir(t, "fgl-1858-3-5-0001.tif")
	reportDir := t.TempDir()

	summary, err := Organize(sourceDir, Options{Quiet: true, ReportDir: reportDir})
	require.NoError(t, err)

	expected := filepath.Join(reportDir, "FGL_1858_non_standard.txt")
	assert.Equal(t, expected, summary.ReportPath)
	assert.FileExists(t, expected)
}

func TestScanIsSideEffectFree(t *testing.T) {
	root, sourceDir := newSourceDir(t,
		"FGL_1858_12_25_0001.tif",
		"fgl-1858-3-5-0002.tif",
		"readme.txt",
	)

	entries, err := Scan(sourceDir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	standard := byName["FGL_1858_12_25_0001.tif"]
	assert.True(t, standard.Matched)
	assert.True(t, standard.Standard)
	assert.Equal(t, "1858-12-25", standard.DateKey)

	legacy := byName["fgl-1858-3-5-0002.tif"]
	assert.True(t, legacy.Matched)
	assert.False(t, legacy.Standard)
	assert.Equal(t, "1858-03-05", legacy.DateKey)

	assert.False(t, byName["readme.txt"].Matched)

	// Nothing moved, created, or reported.
	assert.FileExists(t, filepath.Join(sourceDir, "FGL_1858_12_25_0001.tif"))
	assert.NoDirExists(t, filepath.Join(sourceDir, "1858-12-25"))
	assert.NoFileExists(t, filepath.Join(root, "FGL_1858_non_standard.txt"))
}

func TestReportPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/archive", "FGL_1858_non_standard.txt"),
		ReportPath(filepath.Join("/archive", "FGL_1858"), ""))

	assert.Equal(t,
		filepath.Join("/reports", "FGL_1858_non_standard.txt"),
		ReportPath(filepath.Join("/archive", "FGL_1858"), "/reports"))
}
