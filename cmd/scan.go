package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snlarchive/datesort/internal/flags"
	"github.com/snlarchive/datesort/pkg/organizer"
	"github.com/snlarchive/datesort/pkg/output"
)

var scanFlags flags.ScanFlags

var scanCmd = &cobra.Command{
	Use:   "scan [source-directory]",
	Short: "Preview date classification without moving any files",
	Long: `Scan classifies every file in the source directory the same way the
organize run would, and prints the resolved date folder and naming
verdict per file. Nothing is moved, created, or written.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	flags.AddFormatFlag(scanCmd, &scanFlags)
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]

	if err := ValidateSourceDirectory(sourceDir); err != nil {
		return err
	}

	entries, err := organizer.Scan(sourceDir)
	if err != nil {
		return err
	}

	format := scanFlags.Format
	if format == "" {
		if stdoutIsTerminal() {
			format = "table"
		} else {
			format = "plain"
		}
	}

	switch format {
	case "table":
		fmt.Println(output.EntriesTable(entries))
	case "plain":
		output.WriteEntries(os.Stdout, entries)
	case "csv":
		if err := output.WriteEntriesCSV(os.Stdout, entries); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format '%s' (want table, plain, or csv)", format)
	}

	return nil
}
