package document

import (
	"time"

	"github.com/nao1215/seoreport/internal/model"
)

// Section names in assembly order.
const (
	SectionCover            = "cover"
	SectionExecutiveSummary = "executive_summary"
	SectionDetailedMetrics  = "detailed_metrics"
	SectionStrengths        = "strengths"
	SectionActionPlan       = "action_plan"
	SectionNextSteps        = "next_steps"
)

// Section is a named group of blocks.
type Section struct {
	// Name is one of the Section* constants.
	Name string `json:"name"`

	// Blocks are the section contents in display order.
	Blocks []Block `json:"blocks"`
}

// Document is an assembled report ready for layout.
type Document struct {
	// ID uniquely identifies this rendering of the report.
	ID string `json:"id"`

	// Title is the document title, also used as PDF metadata.
	Title string `json:"title"`

	// Subject describes the document, typically the analyzed URL.
	Subject string `json:"subject"`

	// Creator is the producing application.
	Creator string `json:"creator"`

	// Fingerprint identifies the analysis results the report was built from.
	Fingerprint string `json:"fingerprint,omitempty"`

	// GeneratedAt is the assembly time.
	GeneratedAt time.Time `json:"generated_at"`

	// PageSize is the requested page size (e.g. "Letter", "A4").
	PageSize string `json:"page_size"`

	// Summary is the classification the document was built from.
	Summary *model.Summary `json:"summary"`

	// Sections are the document sections in display order.
	Sections []Section `json:"sections"`

	// ReportData is an opaque caller payload carried along unchanged.
	ReportData any `json:"report_data,omitempty"`
}

// Blocks returns all blocks of all sections as one linear sequence.
func (d *Document) Blocks() []Block {
	var n int
	for _, s := range d.Sections {
		n += len(s.Blocks)
	}

	blocks := make([]Block, 0, n)
	for _, s := range d.Sections {
		blocks = append(blocks, s.Blocks...)
	}
	return blocks
}

// Section returns the section with the given name.
func (d *Document) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// SectionNames returns the names of all sections in display order.
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		names[i] = s.Name
	}
	return names
}
