package exporter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/seoreport/internal/config"
	"github.com/nao1215/seoreport/internal/document"
	"github.com/nao1215/seoreport/internal/model"
	"github.com/nao1215/seoreport/internal/report"
)

const (
	// filenamePrefix starts every generated report file name.
	filenamePrefix = "seo_report_"

	// timestampLayout is the YYYYMMDD_HHMMSS suffix of generated names.
	timestampLayout = "20060102_150405"

	// dirPerm is used when creating report directories.
	dirPerm = 0750

	// filePerm keeps reports readable by the owner only; analyzed URLs and
	// report data may be confidential to the client.
	filePerm = 0600
)

// WriterFactory returns the layout writer for a format.
type WriterFactory func(format report.Format, output io.Writer) (report.Writer, error)

// Exporter turns analysis results into a report file.
// Each call to Export classifies and assembles from scratch, so one
// Exporter can be reused sequentially; use one Exporter per goroutine.
type Exporter struct {
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
	format    report.Format
	newWriter WriterFactory
	echo      io.Writer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithClock sets the time source used for the cover date and default file names.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithFormat overrides the configured output format.
// An explicit output path with a known extension still wins.
func WithFormat(format report.Format) Option {
	return func(e *Exporter) {
		e.format = format
	}
}

// WithWriterFactory replaces the layout writers, mainly for tests.
func WithWriterFactory(f WriterFactory) Option {
	return func(e *Exporter) {
		if f != nil {
			e.newWriter = f
		}
	}
}

// WithSummaryEcho also writes the executive summary as plain text to w
// while the report file is rendered.
func WithSummaryEcho(w io.Writer) Option {
	return func(e *Exporter) {
		e.echo = w
	}
}

// New creates an Exporter. A nil cfg uses config.NewConfig().
func New(cfg *config.Config, opts ...Option) *Exporter {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	e := &Exporter{
		cfg: cfg,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.newWriter == nil {
		e.newWriter = e.defaultWriter
	}

	return e
}

// defaultWriter is report.NewWriter with the PDF writer logging through
// the exporter's logger.
func (e *Exporter) defaultWriter(format report.Format, output io.Writer) (report.Writer, error) {
	if format == report.FormatPDF {
		return report.NewPDFWriter(output, report.WithPDFLogger(e.logger)), nil
	}
	return report.NewWriter(format, output)
}

// Export renders results into a report file and returns its path.
//
// An empty filename yields seo_report_<timestamp>.<ext> in the reports
// directory, and a bare file name is placed there too. When the target
// directory cannot be created or written, the configured fallback
// directory is used instead. reportData is carried into the document
// unchanged.
//
// Every failure is an *Error; use errors.Is with the sentinels of this
// package to tell them apart. No partial file is left behind.
func (e *Exporter) Export(results model.Results, reportData any, filename string) (string, error) {
	if results.IsEmpty() {
		return "", e.fail(newError(KindMissingData, "no analysis data available", nil))
	}

	format, err := e.resolveFormat(filename)
	if err != nil {
		return "", e.fail(newError(KindLayoutBuild, "unsupported output format", err))
	}

	path, xerr := e.resolvePath(filename, format)
	if xerr != nil {
		return "", e.fail(xerr)
	}

	url := results.URL("")
	site := e.cfg.Site(url)
	e.logger.Debug("exporting report",
		"url", url,
		"path", path,
		"format", format,
		"plan", site.PlanName,
	)

	doc, err := document.New(results,
		document.WithLogger(e.logger),
		document.WithClock(e.now),
		document.WithTitle(site.Title),
		document.WithPlanName(site.PlanName),
		document.WithPageSize(site.PageSize),
		document.WithReportData(reportData),
	).Assemble()
	if err != nil {
		xerr := newError(KindSectionBuild, "could not build document", err)
		var serr *document.SectionError
		if errors.As(err, &serr) {
			xerr.Section = serr.Section
		}
		return "", e.fail(xerr)
	}

	n, err := e.writeFile(path, format, doc)
	if err != nil {
		xerr := newError(KindLayoutBuild, "could not render document", err)
		xerr.Path = path
		return "", e.fail(xerr)
	}

	if err := verifyOutput(path); err != nil {
		xerr := newError(KindOutputVerification, "report file was not created", err)
		xerr.Path = path
		return "", e.fail(xerr)
	}

	e.logger.Info("report exported",
		"path", path,
		"format", format,
		"bytes", n,
		"issues", doc.Summary.TotalIssues,
	)
	return path, nil
}

// DefaultFilename returns the generated file name for the current time.
// A non-empty suffix is appended before the extension so concurrent
// exports in the same second do not collide.
func (e *Exporter) DefaultFilename(suffix string) string {
	format, err := e.resolveFormat("")
	if err != nil {
		format = report.FormatPDF
	}
	return e.defaultName(format, suffix)
}

func (e *Exporter) defaultName(format report.Format, suffix string) string {
	name := filenamePrefix + e.now().Format(timestampLayout)
	if suffix != "" {
		name += "_" + suffix
	}
	return name + format.Extension()
}

// resolveFormat picks the format from the file extension, then the
// WithFormat option, then the configuration.
func (e *Exporter) resolveFormat(filename string) (report.Format, error) {
	if f, ok := report.FormatFromPath(filename); ok {
		return f, nil
	}
	if e.format != "" {
		return report.ParseFormat(string(e.format))
	}
	return report.ParseFormat(e.cfg.Format)
}

// resolvePath returns the output path and makes sure its
// directory exists and is writable.
func (e *Exporter) resolvePath(filename string, format report.Format) (string, *Error) {
	dir := e.cfg.ReportsDir
	name := filename
	if filename == "" {
		name = e.defaultName(format, "")
	} else if filepath.Base(filename) != filename {
		dir, name = filepath.Split(filename)
	}

	dir, xerr := e.outputDir(dir)
	if xerr != nil {
		return "", xerr
	}
	return filepath.Join(dir, name), nil
}

// outputDir returns primary if it can be created and written, otherwise
// the fallback directory.
func (e *Exporter) outputDir(primary string) (string, *Error) {
	if primary == "" {
		primary = "."
	}

	err := ensureWritable(primary)
	if err == nil {
		return primary, nil
	}

	fallback := e.cfg.FallbackDir
	e.logger.Warn("reports directory unavailable, using fallback",
		"dir", primary,
		"fallback", fallback,
		"error", err,
	)

	if ferr := ensureWritable(fallback); ferr != nil {
		xerr := newError(KindOutput, "no writable output directory", errors.Join(err, ferr))
		xerr.Path = fallback
		return "", xerr
	}
	return fallback, nil
}

// ensureWritable creates dir if needed and checks it with a temporary file.
func ensureWritable(dir string) error {
	if dir == "" {
		return errors.New("directory not configured")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := checkWritable(dir); err != nil {
		return fmt.Errorf("directory is not writable: %w", err)
	}
	return nil
}

// writeFile renders doc into path. The file is removed when rendering fails.
func (e *Exporter) writeFile(path string, format report.Format, doc *document.Document) (n int, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path) //nolint:errcheck // Best effort cleanup of a partial report
		}
	}()

	w, err := e.newWriter(format, f)
	if err != nil {
		return 0, err
	}
	if e.echo == nil {
		return w.Write(doc)
	}

	echo := report.NewSimpleWriter(e.echo, report.WithSections(document.SectionExecutiveSummary))
	if _, err := report.NewMultiWriter(w, echo).Write(doc); err != nil {
		return 0, err
	}
	return countWritten(path)
}

// countWritten returns the size of the rendered file.
func countWritten(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return int(info.Size()), nil
}

// verifyOutput checks that the rendered file exists.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// fail logs an export error with its category and returns it.
func (e *Exporter) fail(err *Error) *Error {
	e.logger.Error("report export failed",
		"kind", err.Kind,
		"message", err.Message,
		"section", err.Section,
		"path", err.Path,
		"error", err.Cause,
	)
	return err
}
