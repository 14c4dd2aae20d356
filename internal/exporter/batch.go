package exporter

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/nao1215/seoreport/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when no concurrency is configured.
const DefaultConcurrency = 4

// Job is one export of a batch.
type Job struct {
	// Name identifies the job in logs, typically the input file.
	Name string

	// Results are the analysis results to export.
	Results model.Results

	// ReportData is passed through to the document.
	ReportData any

	// Filename is the output path. When empty, a generated name with the
	// job's position as suffix is used.
	Filename string
}

// Result is the outcome of one Job.
type Result struct {
	// Job is the job this result belongs to.
	Job Job

	// Path is the written report, empty on failure.
	Path string

	// Err is the export error, if any.
	Err error
}

// BatchExporter exports several independent results concurrently.
//
// Design decision: We use a factory rather than sharing one Exporter so
// every job gets its own classifier and assembler state, the same way each
// export runs on fresh instances when called one at a time.
type BatchExporter struct {
	// exporterFactory creates a new Exporter for each job.
	exporterFactory func() *Exporter

	// concurrency is the maximum number of concurrent exports.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchExporter.
type BatchOption func(*BatchExporter)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchExporter) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent exports.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchExporter) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchExporter creates a new BatchExporter.
func NewBatchExporter(exporterFactory func() *Exporter, opts ...BatchOption) *BatchExporter {
	b := &BatchExporter{
		exporterFactory: exporterFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Export runs every job and returns one Result per job, in job order.
//
// A failing job is recorded in its Result and does not stop the others.
// The returned error is non-nil only when ctx is cancelled; jobs that had
// not started by then carry ctx.Err().
func (b *BatchExporter) Export(ctx context.Context, jobs []Job) ([]Result, error) {
	b.logger.Info("starting batch export",
		"total_jobs", len(jobs),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, job := range jobs {
		results[i].Job = job

		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return ctx.Err()
			default:
			}

			exp := b.exporterFactory()
			if job.Filename == "" {
				job.Filename = exp.DefaultFilename(strconv.Itoa(i + 1))
			}

			// Each goroutine writes only its own slot.
			path, err := exp.Export(job.Results, job.ReportData, job.Filename)
			results[i].Path = path
			results[i].Err = err

			if err != nil {
				b.logger.Warn("export failed",
					"job", job.Name,
					"error", err,
				)
				return nil
			}

			b.logger.Info("export completed",
				"job", job.Name,
				"path", path,
			)
			return nil
		})
	}

	err := g.Wait()

	b.logger.Info("batch export complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
