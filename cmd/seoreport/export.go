package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/seoreport/internal/config"
	"github.com/nao1215/seoreport/internal/exporter"
	"github.com/nao1215/seoreport/internal/model"
	"github.com/nao1215/seoreport/internal/report"
)

// stdinName is the input name used when results are read from stdin.
const stdinName = "-"

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [results-file...]",
		Short: "Generate a report from SEO analysis results",
		Long: `Export reads the results of an SEO analysis (JSON or YAML) and writes a report.

The report contains a cover page, an executive summary, detailed metric
tables, the strengths of the site, a detailed action plan and the
recommended next steps. Results are read from standard input when no file
is given or when the file is "-".

When several results files are given, the reports are generated
concurrently and -o names the output directory.

Examples:
  # PDF report in the reports directory
  seoreport export results.json

  # Markdown report at a specific path
  seoreport export -o report.md results.json

  # Pipe results from the analyzer
  analyzer https://example.com | seoreport export -f text -o report.txt

  # Attach client data and export several sites
  seoreport export --report-data client.yaml -o ./reports site1.json site2.json

Configuration file (.seoreport) example:
  format: pdf
  pageSize: A4
  sites:
    example.com:
      planName: "Premium Plan - SEO Analysis"`,
		Args: cobra.ArbitraryArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Output file (or directory for several inputs); a bare file name is placed in the reports directory")
	cmd.Flags().StringP("format", "f", "",
		"Output format: "+formatList()+" (default: from extension or config)")
	cmd.Flags().StringP("page-size", "p", "",
		"PDF page size: Letter, Legal, A3, A4 or A5")
	cmd.Flags().String("plan", "",
		"Plan name shown on the cover page")
	cmd.Flags().String("title", "",
		"Document title")
	cmd.Flags().String("report-data", "",
		"JSON or YAML file with extra data attached to the report")
	cmd.Flags().BoolP("summary", "s", false,
		"Also print the executive summary to the terminal (single input only)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent exports")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .seoreport in current or home directory)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, getVerboseFlag(cmd) || cfg.Verbose)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	reportDataPath, err := cmd.Flags().GetString("report-data")
	if err != nil {
		return err
	}
	reportData, err := loadReportData(reportDataPath)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if len(args) > 1 {
		return runBatchExport(ctx, cmd, cfg, logger, args, reportData, output)
	}

	input := stdinName
	if len(args) == 1 {
		input = args[0]
	}
	results, err := readResults(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	summary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return err
	}

	exp := newExporter(cfg, logger)
	if summary {
		exp = newExporter(cfg, logger, exporter.WithSummaryEcho(cmd.OutOrStdout()))
	}

	path, err := exp.Export(results, reportData, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report generated: %s\n", path)
	return nil
}

// buildConfig creates a Config from the configuration file and cobra flags.
// Flags override the file, which overrides the defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	stringFlags := map[string]*string{
		"format":    &cfg.Format,
		"page-size": &cfg.PageSize,
		"plan":      &cfg.PlanName,
		"title":     &cfg.Title,
	}
	for name, target := range stringFlags {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			continue
		}
		if *target, err = cmd.Flags().GetString(name); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Lookup("batch") != nil && cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// readResults reads and parses analysis results from a file, or from
// stdin when name is "-".
func readResults(stdin io.Reader, name string) (model.Results, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(filepath.Clean(name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read results %s: %w", name, err)
	}

	results, err := model.ParseResults(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return results, nil
}

// loadReportData decodes the optional report data file.
// yaml.v3 also accepts JSON, so one decoder serves both.
func loadReportData(path string) (any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read report data: %w", err)
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse report data %s: %w", path, err)
	}
	return v, nil
}

// runBatchExport exports several results files concurrently.
// Each report is named after its input file and written to outputDir, or
// to the reports directory when outputDir is empty.
func runBatchExport(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	logger *slog.Logger,
	inputs []string,
	reportData any,
	outputDir string,
) error {
	if outputDir != "" {
		cfg.ReportsDir = outputDir
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	jobs := make([]exporter.Job, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		results, err := readResults(cmd.InOrStdin(), input)
		if err != nil {
			return err
		}

		// Inputs sharing a base name fall back to generated names.
		name := reportName(input, format)
		if seen[name] {
			name = ""
		}
		seen[name] = true

		jobs = append(jobs, exporter.Job{
			Name:       input,
			Results:    results,
			ReportData: reportData,
			Filename:   name,
		})
	}

	batch := exporter.NewBatchExporter(
		func() *exporter.Exporter { return newExporter(cfg, logger) },
		exporter.WithConcurrency(cfg.BatchSize),
		exporter.WithBatchLogger(logger),
	)

	results, err := batch.Export(ctx, jobs)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed: %s: %v\n", r.Job.Name, r.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report generated: %s\n", r.Path)
	}
	if err != nil {
		return fmt.Errorf("batch export cancelled: %w", err)
	}

	if failed := exporter.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d exports failed", len(failed), len(results))
	}
	return nil
}

// reportName derives the report file name from an input file name.
// Inputs without a usable name get a generated one.
func reportName(input string, format report.Format) string {
	if input == stdinName {
		return ""
	}
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return ""
	}
	return base + format.Extension()
}

// formatList returns the supported output formats as "a, b, c or d".
func formatList() string {
	formats := report.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// newExporter creates an Exporter that stamps the CLI version into JSON reports.
func newExporter(cfg *config.Config, logger *slog.Logger, opts ...exporter.Option) *exporter.Exporter {
	opts = append([]exporter.Option{
		exporter.WithLogger(logger),
		exporter.WithWriterFactory(newReportWriter(logger)),
	}, opts...)
	return exporter.New(cfg, opts...)
}

// newReportWriter returns report.NewWriter with version information in JSON
// output and PDF warnings sent to logger.
func newReportWriter(logger *slog.Logger) exporter.WriterFactory {
	return func(format report.Format, output io.Writer) (report.Writer, error) {
		switch format {
		case report.FormatJSON:
			return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion())), nil
		case report.FormatPDF:
			return report.NewPDFWriter(output, report.WithPDFLogger(logger)), nil
		default:
			return report.NewWriter(format, output)
		}
	}
}
