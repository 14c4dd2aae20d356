package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/seoreport/internal/exporter"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where reports are written and whether that works",
		Long: `Status prints the reports directory, whether it exists and is writable,
the fallback directory, and details about the running environment.

Use it to troubleshoot exports that end up in the fallback directory.`,
		Args: cobra.NoArgs,
		RunE: runStatusCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output status as JSON")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .seoreport in current or home directory)")

	return cmd
}

// runStatusCmd executes the status command.
func runStatusCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, getVerboseFlag(cmd) || cfg.Verbose)
	status := exporter.New(cfg, exporter.WithLogger(logger)).CheckSystemStatus()

	out := cmd.OutOrStdout()
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(status)
	}

	configFile := cfg.ConfigFilePath
	if configFile == "" {
		configFile = "(none)"
	}

	fmt.Fprintf(out, "Config file:      %s\n", configFile)
	fmt.Fprintf(out, "Reports dir:      %s\n", status.ReportsDir)
	fmt.Fprintf(out, "  exists:         %s\n", yesNo(status.DirExists))
	fmt.Fprintf(out, "  writable:       %s\n", yesNo(status.DirWritable))
	fmt.Fprintf(out, "Fallback dir:     %s\n", status.FallbackDir)
	fmt.Fprintf(out, "Output format:    %s\n", cfg.Format)
	fmt.Fprintf(out, "Go version:       %s\n", status.GoVersion)
	fmt.Fprintf(out, "User:             %s\n", status.User)
	fmt.Fprintf(out, "Current dir:      %s\n", status.CurrentDir)
	if status.Error != "" {
		fmt.Fprintf(out, "Error:            %s\n", status.Error)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
