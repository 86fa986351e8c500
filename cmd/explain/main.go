package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/utkarsh5026/Explain/cmd/ui"
	"github.com/utkarsh5026/Explain/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain - detailed error explanations",
		Long: `Explain builds and displays rich error explanations:
what happened, why, where, and how to fix it.

The library lives under pkg/; this tool demonstrates it and inspects
audit logs written with pkg/audit.`,
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newShowCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMessage(err.Error()))
		os.Exit(1)
	}
}

func setupLogging() {
	level := logger.ParseLevel(logLevel)
	if verbose {
		level = logger.LevelDebug
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Setup(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
