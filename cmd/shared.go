package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/snlarchive/datesort/pkg/fileutil"
)

func ValidateSourceDirectory(path string) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("source directory '%s' does not exist", path)
	}
	if !fileutil.IsDirectory(path) {
		return fmt.Errorf("source path '%s' is not a directory", path)
	}
	return nil
}

// resolveQuiet merges the --quiet flag with the viper config value.
func resolveQuiet() bool {
	return quiet || viper.GetBool("quiet")
}

// resolveReportDir prefers the flag, then the viper config value, then
// the organizer default (parent of the source directory).
func resolveReportDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString("report_dir")
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
