package document

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/seoreport/internal/classifier"
	"github.com/nao1215/seoreport/internal/model"
)

// Default document settings.
const (
	DefaultTitle    = "SEO Analysis Report"
	DefaultPlanName = "Basic Plan - SEO Analysis"
	DefaultPageSize = "Letter"
	DefaultCreator  = "seoreport"

	// sectionGap is the whitespace appended between sections.
	sectionGap = 20
)

// ErrSectionBuild is matched by errors.Is for every SectionError.
var ErrSectionBuild = errors.New("section build failed")

// SectionError reports a section that could not be built.
type SectionError struct {
	// Section is the name of the failing section.
	Section string

	// Cause describes the failure.
	Cause error
}

// Error implements the error interface.
func (e *SectionError) Error() string {
	return fmt.Sprintf("failed to build section %s: %v", e.Section, e.Cause)
}

// Unwrap returns the cause and ErrSectionBuild for errors.Is checks.
func (e *SectionError) Unwrap() []error {
	return []error{ErrSectionBuild, e.Cause}
}

// SectionBuilder is one step of the assembly.
//
// Design decision: We keep the builders as a plain ordered list of named
// functions, the same shape as a pipeline of steps, so that Assemble can log
// and isolate each section uniformly and tests can run a single builder.
type SectionBuilder struct {
	// Name is the section name.
	Name string

	// Build returns the section blocks.
	Build func() []Block
}

// Assembler builds a Document from analysis results.
// An Assembler is not safe for concurrent use; create one per export.
type Assembler struct {
	results    model.Results
	summary    *model.Summary
	classifier *classifier.Classifier
	logger     *slog.Logger
	now        func() time.Time
	title      string
	planName   string
	pageSize   string
	reportData any
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithSummary supplies an existing classification.
// Without it the assembler classifies the results on first use.
func WithSummary(summary *model.Summary) Option {
	return func(a *Assembler) {
		a.summary = summary
	}
}

// WithLogger sets the logger used during assembly.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithClock sets the time source for the generation date.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(a *Assembler) {
		if title != "" {
			a.title = title
		}
	}
}

// WithPlanName sets the plan name shown on the cover.
func WithPlanName(name string) Option {
	return func(a *Assembler) {
		if name != "" {
			a.planName = name
		}
	}
}

// WithPageSize sets the page size recorded in the document.
func WithPageSize(size string) Option {
	return func(a *Assembler) {
		if size != "" {
			a.pageSize = size
		}
	}
}

// WithReportData attaches an opaque payload to the document.
func WithReportData(data any) Option {
	return func(a *Assembler) {
		a.reportData = data
	}
}

// New creates an Assembler for the given results.
func New(results model.Results, opts ...Option) *Assembler {
	a := &Assembler{
		results:  results,
		now:      time.Now,
		title:    DefaultTitle,
		planName: DefaultPlanName,
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.results == nil {
		a.results = model.Results{}
	}
	a.classifier = classifier.New(classifier.WithLogger(a.logger))

	return a
}

// Summary returns the classification, running it if none is available yet.
func (a *Assembler) Summary() *model.Summary {
	if a.summary == nil {
		a.summary = a.classifier.Classify(a.results)
	}
	return a.summary
}

// Builders returns the section builders in assembly order.
func (a *Assembler) Builders() []SectionBuilder {
	return []SectionBuilder{
		{Name: SectionCover, Build: a.Cover},
		{Name: SectionExecutiveSummary, Build: a.ExecutiveSummary},
		{Name: SectionDetailedMetrics, Build: a.DetailedMetrics},
		{Name: SectionStrengths, Build: a.Strengths},
		{Name: SectionActionPlan, Build: a.ActionPlan},
		{Name: SectionNextSteps, Build: a.NextSteps},
	}
}

// Assemble builds every section in order and returns the document.
// A section that fails aborts the assembly with a *SectionError; no partial
// document is returned.
func (a *Assembler) Assemble() (*Document, error) {
	summary := a.Summary()
	builders := a.Builders()

	doc := &Document{
		ID:          uuid.New().String(),
		Title:       a.title,
		Subject:     a.results.URL(NotAvailable),
		Creator:     DefaultCreator,
		Fingerprint: a.results.Fingerprint(),
		GeneratedAt: a.now(),
		PageSize:    a.pageSize,
		Summary:     summary,
		Sections:    make([]Section, 0, len(builders)),
		ReportData:  a.reportData,
	}

	for i, b := range builders {
		blocks, err := buildSection(b)
		if err != nil {
			a.logger.Error("section build failed",
				"section", b.Name,
				"error", err,
			)
			return nil, err
		}

		if i < len(builders)-1 {
			blocks = append(blocks, Spacer(sectionGap))
		}
		doc.Sections = append(doc.Sections, Section{Name: b.Name, Blocks: blocks})

		a.logger.Debug("section built",
			"section", b.Name,
			"blocks", len(blocks),
		)
	}

	return doc, nil
}

// buildSection runs one builder and converts a panic into a SectionError.
func buildSection(b SectionBuilder) (blocks []Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = &SectionError{Section: b.Name, Cause: fmt.Errorf("%v", r)}
		}
	}()

	if b.Build == nil {
		return nil, &SectionError{Section: b.Name, Cause: errors.New("no builder")}
	}
	return b.Build(), nil
}

// guard runs a field formatter and substitutes def when it panics or
// returns an empty string.
func guard(def string, format func() string) (out string) {
	defer func() {
		if recover() != nil {
			out = def
		}
	}()

	if out = format(); out == "" {
		return def
	}
	return out
}
