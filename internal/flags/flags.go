package flags

import "github.com/spf13/cobra"

type OrganizeFlags struct {
	NoReport  bool
	ReportDir string
}

type ScanFlags struct {
	Format string
}

func AddReportFlags(cmd *cobra.Command, flags *OrganizeFlags) {
	cmd.Flags().BoolVar(&flags.NoReport, "no-report", false, "Do not write the non-standard filename report")
	cmd.Flags().StringVar(&flags.ReportDir, "report-dir", "", "Directory for the non-standard report (default: parent of the source directory)")
}

func AddFormatFlag(cmd *cobra.Command, flags *ScanFlags) {
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format: table, plain, or csv (default: table on a terminal, plain otherwise)")
}
