package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/utkarsh5026/Explain/cmd/ui"
	"github.com/utkarsh5026/Explain/pkg/audit"
	"github.com/utkarsh5026/Explain/pkg/common/logger"
	"github.com/utkarsh5026/Explain/pkg/explain"
	"github.com/utkarsh5026/Explain/pkg/explain/colorize"
)

func newDemoCmd() *cobra.Command {
	var noColor bool
	var auditFile string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample error report",
		Long: `Build a sample multi-cause error report and render it.
Optionally append the report to an audit log for later inspection
with 'explain show'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := sampleReport()

			if noColor {
				fmt.Println(report.Render())
			} else {
				fmt.Println(colorize.Default().Render(report))
			}

			if auditFile == "" {
				return nil
			}

			f, err := os.OpenFile(auditFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			defer f.Close()

			if err := audit.NewLog(f).Append(report); err != nil {
				return fmt.Errorf("failed to append to audit log: %w", err)
			}

			logger.Debug("appended report to audit log", "file", auditFile)
			fmt.Println(ui.SuccessMessage("Report appended to", auditFile))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Render without colors")
	cmd.Flags().StringVar(&auditFile, "audit", "", "Append the report to this audit log file")

	return cmd
}

// sampleReport mirrors the scripting-language example from the package
// documentation: a failed compilation caused by a missing variable and a
// missing function.
func sampleReport() explain.Report {
	code := "if missing_variable > 0 { return missing_function(missing_variable); }"

	missingVariable := explain.Describe("Variable missing_variable doesn't exist", explain.Opts{
		Context:     code[0:23],
		Remediation: "declare it before using it, like this:\nlet missing_variable = your value",
		Line:        1,
		Column:      4,
	})

	missingFunction := explain.Describe("Function missing_function doesn't exist", explain.Opts{
		Context:     code[26:68],
		Remediation: "implement a missing_function function, like this:\nfn missing_function(...) { your code here }",
		Line:        1,
		Column:      34,
	})

	return explain.Describe("Couldn't compile code", explain.Opts{
		Cause: "the script references names that were never declared",
	}).WithCause(missingVariable).WithCause(missingFunction)
}
