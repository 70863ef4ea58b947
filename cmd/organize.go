package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snlarchive/datesort/internal/flags"
	"github.com/snlarchive/datesort/pkg/organizer"
	"github.com/snlarchive/datesort/pkg/output"
)

var organizeFlags flags.OrganizeFlags

func init() {
	flags.AddReportFlags(rootCmd, &organizeFlags)
}

func runOrganize(cmd *cobra.Command, args []string) error {
	sourceDir := args[0]

	if err := ValidateSourceDirectory(sourceDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Organizing files in: %s\n", sourceDir)

	opts := organizer.Options{
		Quiet:     resolveQuiet(),
		NoReport:  organizeFlags.NoReport,
		ReportDir: resolveReportDir(organizeFlags.ReportDir),
	}

	summary, err := organizer.Organize(sourceDir, opts)
	if err != nil {
		return err
	}

	if stdoutIsTerminal() {
		fmt.Println()
		fmt.Println(output.SummaryTable(summary))
	} else {
		output.WriteSummary(os.Stdout, summary)
	}
	fmt.Println("\nOrganization complete!")

	return nil
}
