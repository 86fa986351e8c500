package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/utkarsh5026/Explain/cmd/ui"
	"github.com/utkarsh5026/Explain/pkg/audit"
	"github.com/utkarsh5026/Explain/pkg/common/logger"
	"github.com/utkarsh5026/Explain/pkg/explain/colorize"
)

func newShowCmd() *cobra.Command {
	var useTable bool
	var limit int

	cmd := &cobra.Command{
		Use:   "show <audit-log>",
		Short: "Show error reports from an audit log",
		Long: `Read a JSON-lines audit log written with pkg/audit and render
every recorded error report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			defer f.Close()

			entries, err := audit.ReadLog(f)
			if err != nil {
				return fmt.Errorf("failed to read audit log: %w", err)
			}
			logger.Debug("read audit log", "file", args[0], "entries", len(entries))

			if len(entries) == 0 {
				fmt.Println(ui.Yellow("Audit log is empty"))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			if useTable {
				displayEntriesAsTable(entries)
			} else {
				displayEntriesDetailed(entries)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display a summary table instead of full reports")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the most recent N entries")

	return cmd
}

// displayEntriesDetailed renders each entry's full report in a box.
func displayEntriesDetailed(entries []audit.Entry) {
	fmt.Println(ui.Header(" Audit Log "))
	fmt.Println()

	palette := colorize.Default()
	for i, entry := range entries {
		report := audit.Restore(entry.Report)
		fmt.Println(ui.FormatEntryDetailed(ui.EntryInfo{
			Index:   i + 1,
			Time:    entry.Time.Format(time.RFC1123),
			Content: palette.Render(report),
		}))
	}
}

// displayEntriesAsTable shows one summary row per entry.
func displayEntriesAsTable(entries []audit.Entry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("#", "Time", "Error", "Causes", "Remediation")

	for i, entry := range entries {
		summary := entry.Report.Summary
		if summary == "" {
			summary = "(unexplained)"
		}
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}

		remediation := entry.Report.Remediation
		if len(remediation) > 40 {
			remediation = remediation[:37] + "..."
		}

		causes := len(entry.Report.CausedBy) + entry.Report.Unexplained

		table.Append(
			ui.Yellow(fmt.Sprint(i+1)),
			ui.Cyan(entry.Time.Format("2006-01-02 15:04")),
			summary,
			fmt.Sprint(causes),
			remediation,
		)
	}

	table.Render()
}
