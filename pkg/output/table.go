package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/snlarchive/datesort/pkg/organizer"
)

// SummaryTable renders the run counters as a two-column table.
func SummaryTable(summary *organizer.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Counter", "Value"})
	tw.AppendRows([]table.Row{
		{"Total files processed", summary.TotalFiles},
		{"Files moved", summary.MovedFiles},
		{"Files skipped", summary.SkippedFiles},
		{"Folders created", len(summary.CreatedFolders)},
		{"Non-standard filenames", len(summary.NonStandard)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// EntriesTable renders scan results with one row per file.
func EntriesTable(entries []organizer.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Filename", "Date folder", "Format"})
	for _, e := range entries {
		if !e.Matched {
			tw.AppendRow(table.Row{e.Name, "(no date)", ""})
			continue
		}
		tw.AppendRow(table.Row{e.Name, e.DateKey, standardLabel(e.Standard)})
	}
	return tw.Render()
}
