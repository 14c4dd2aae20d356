// Package main provides the entry point for the seoreport CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	seolog "github.com/nao1215/seoreport/internal/log"
)

// NewRootCmd creates the root command for seoreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seoreport",
		Short: "Generate SEO analysis reports",
		Long: `seoreport generates reports from the results of an SEO analysis.

It classifies the findings by severity, builds an executive summary, metric
tables, the strengths of the site and a prioritized action plan, and writes
the report as PDF, Markdown, plain text or JSON.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON for log collectors")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getGlobalBool(cmd, "verbose")
}

// getGlobalBool retrieves a persistent boolean flag from the command or
// the root command.
func getGlobalBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// setupLogger creates the redacting logger on stderr and installs it as
// the default so packages using slog.Default() share it.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	newLogger := seolog.NewSecureLogger
	if getGlobalBool(cmd, "log-json") {
		newLogger = seolog.NewSecureJSONLogger
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}
