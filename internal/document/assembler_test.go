package document

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/nao1215/seoreport/internal/model"
)

var fixedTime = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// poorSite returns results that trigger every classification rule.
func poorSite() model.Results {
	return model.Results{
		"url": "https://example.com",
		"technical_seo": map[string]any{
			"html_structure": map[string]any{"has_doctype": false, "has_head": true, "has_html_tag": true},
		},
		"meta_data": map[string]any{
			"title_tag": map[string]any{"optimal_length": "bad", "length": 80, "content": "Shop &amp; Blog"},
			"img_alt":   map[string]any{"without_alt": 3, "with_alt": 2},
		},
		"performance": map[string]any{
			"load_time":   map[string]any{"time_seconds": 1.5, "rating": "good"},
			"status_code": map[string]any{"code": 200},
		},
		"mobile": map[string]any{
			"responsive_design": map[string]any{"has_fluid_images": false},
		},
	}
}

// texts returns the text of every block of the given kind.
func texts(blocks []Block, kind Kind) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == kind {
			out = append(out, b.Text)
		}
	}
	return out
}

// TestAssembleID tests that every assembly gets its own report ID.
func TestAssembleID(t *testing.T) {
	t.Parallel()

	a := New(poorSite(), WithClock(fixedClock))
	first, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	second, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", first.ID, err)
	}
	if first.ID == second.ID {
		t.Error("expected distinct IDs for separate assemblies")
	}
	if first.Fingerprint != second.Fingerprint {
		t.Error("expected equal fingerprints for the same results")
	}
}

// TestAssemble tests the full assembly of a document.
func TestAssemble(t *testing.T) {
	t.Parallel()

	doc, err := New(poorSite(), WithClock(fixedClock)).Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := []string{
		SectionCover,
		SectionExecutiveSummary,
		SectionDetailedMetrics,
		SectionStrengths,
		SectionActionPlan,
		SectionNextSteps,
	}
	if diff := cmp.Diff(want, doc.SectionNames()); diff != "" {
		t.Errorf("section order mismatch (-want +got):\n%s", diff)
	}

	if doc.Subject != "https://example.com" {
		t.Errorf("expected subject to be the URL, got %q", doc.Subject)
	}
	if !doc.GeneratedAt.Equal(fixedTime) {
		t.Errorf("expected fixed generation time, got %v", doc.GeneratedAt)
	}
	if len(doc.Fingerprint) != 16 {
		t.Errorf("expected 16 character fingerprint, got %q", doc.Fingerprint)
	}
	if doc.Summary == nil || doc.Summary.TotalIssues != 4 {
		t.Errorf("expected classified summary with 4 issues, got %+v", doc.Summary)
	}

	// Every section but the last ends with the section gap.
	for i, s := range doc.Sections {
		last := s.Blocks[len(s.Blocks)-1]
		gap := last.Kind == KindSpacer && last.Height == sectionGap
		if i < len(doc.Sections)-1 && !gap {
			t.Errorf("section %s does not end with the section gap", s.Name)
		}
	}

	if got := len(doc.Blocks()); got == 0 {
		t.Error("expected blocks")
	}
}

// TestAssembleWithSummary tests that a supplied summary is used as-is.
func TestAssembleWithSummary(t *testing.T) {
	t.Parallel()

	summary := model.NewSummary()
	summary.Record(model.IssueUnoptimizedMetaDescription, model.SeverityModerate, model.PriorityMedium)

	a := New(poorSite(), WithSummary(summary), WithClock(fixedClock))
	doc, err := a.Assemble()
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if doc.Summary != summary {
		t.Error("expected the supplied summary to be used")
	}
	plan, _ := doc.Section(SectionActionPlan)
	headings := texts(plan.Blocks, KindHeading)
	if len(headings) != 2 || headings[1] != "Unoptimized meta description (Priority: Medium)" {
		t.Errorf("unexpected action plan headings: %v", headings)
	}
}

// TestCover tests the cover section.
func TestCover(t *testing.T) {
	t.Parallel()

	t.Run("with url", func(t *testing.T) {
		t.Parallel()

		blocks := New(poorSite(), WithClock(fixedClock), WithPlanName("Pro Plan")).Cover()
		got := append(texts(blocks, KindHeading), texts(blocks, KindParagraph)...)
		want := []string{
			DefaultTitle,
			"Analyzed URL: https://example.com",
			"Pro Plan",
			"Analysis date: 09/03/2024",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("cover mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without url", func(t *testing.T) {
		t.Parallel()

		blocks := New(nil, WithClock(fixedClock)).Cover()
		if blocks[2].Text != "Analyzed URL: "+NotAvailable {
			t.Errorf("expected placeholder URL, got %q", blocks[2].Text)
		}
	})
}

// TestExecutiveSummary tests the summary table.
func TestExecutiveSummary(t *testing.T) {
	t.Parallel()

	blocks := New(poorSite()).ExecutiveSummary()
	if len(blocks) != 2 || blocks[1].Table == nil {
		t.Fatalf("expected heading and table, got %v", blocks)
	}

	want := [][]string{
		{"Overall status", "Needs critical improvements"},
		{"Critical issues", "2"},
		{"Moderate issues", "1"},
		{"Minor issues", "1"},
		{"Total issues", "4"},
	}
	if diff := cmp.Diff(want, blocks[1].Table.Rows); diff != "" {
		t.Errorf("summary rows mismatch (-want +got):\n%s", diff)
	}
}

// TestActionPlan tests the action plan section.
func TestActionPlan(t *testing.T) {
	t.Parallel()

	t.Run("entries follow rule order", func(t *testing.T) {
		t.Parallel()

		blocks := New(poorSite()).ActionPlan()
		want := []string{
			"Detailed Action Plan",
			"Missing DOCTYPE declaration (Priority: Medium)",
			"Unoptimized title (Priority: High)",
			"Images without alt text (Priority: Low)",
			"Non-responsive design (Priority: High)",
		}
		if diff := cmp.Diff(want, texts(blocks, KindHeading)); diff != "" {
			t.Errorf("action plan headings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown issue uses defaults", func(t *testing.T) {
		t.Parallel()

		summary := model.NewSummary()
		summary.PriorityImprovements = append(summary.PriorityImprovements,
			model.NewImprovement("mystery_issue", "alta"),
			model.NewImprovement("", "media"),
		)

		blocks := New(nil, WithSummary(summary)).ActionPlan()
		paragraphs := texts(blocks, KindParagraph)
		want := []string{
			model.DefaultCurrentState,
			model.DefaultSolution,
			"- " + model.DefaultImplementation,
			model.DefaultExpectedBenefit,
		}
		if diff := cmp.Diff(want, paragraphs); diff != "" {
			t.Errorf("default strings mismatch (-want +got):\n%s", diff)
		}
		if h := texts(blocks, KindHeading); len(h) != 2 || h[1] != "mystery_issue (Priority: High)" {
			t.Errorf("unexpected headings: %v", h)
		}
	})

	t.Run("only malformed improvements leave the heading", func(t *testing.T) {
		t.Parallel()

		summary := model.NewSummary()
		summary.PriorityImprovements = []model.Improvement{
			model.NewImprovement("", "alta"),
			{Priority: model.PriorityMedium},
		}

		blocks := New(nil, WithSummary(summary)).ActionPlan()
		want := []Block{Heading(LevelSection, "Detailed Action Plan")}
		if diff := cmp.Diff(want, blocks); diff != "" {
			t.Errorf("action plan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no improvements", func(t *testing.T) {
		t.Parallel()

		blocks := New(model.Results{"url": "https://example.com"}).ActionPlan()
		if len(blocks) != 2 || !strings.HasPrefix(blocks[1].Text, "No issues requiring") {
			t.Errorf("expected no-action sentence, got %v", blocks)
		}
	})
}

// TestNextSteps tests the partitioning of improvements by priority.
func TestNextSteps(t *testing.T) {
	t.Parallel()

	t.Run("partition", func(t *testing.T) {
		t.Parallel()

		summary := model.NewSummary()
		summary.PriorityImprovements = []model.Improvement{
			model.NewImprovement("A", "alta"),
			model.NewImprovement("B", "media"),
			model.NewImprovement("C", "baja"),
		}

		blocks := New(nil, WithSummary(summary)).NextSteps()
		want := []Block{
			Heading(LevelSection, "Recommended Next Steps"),
			Heading(LevelSubsection, "Immediate Actions (Quick Wins):"),
			Bullet("A"),
			Heading(LevelSubsection, "Mid-Term Plan:"),
			Bullet("B"),
		}
		if diff := cmp.Diff(want, blocks); diff != "" {
			t.Errorf("next steps mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unnormalized priorities are grouped", func(t *testing.T) {
		t.Parallel()

		summary := model.NewSummary()
		summary.PriorityImprovements = []model.Improvement{
			{Issue: "A", Priority: "alta"},
			{Issue: "B", Priority: "Media"},
		}

		blocks := New(nil, WithSummary(summary)).NextSteps()
		want := []Block{
			Heading(LevelSection, "Recommended Next Steps"),
			Heading(LevelSubsection, "Immediate Actions (Quick Wins):"),
			Bullet("A"),
			Heading(LevelSubsection, "Mid-Term Plan:"),
			Bullet("B"),
		}
		if diff := cmp.Diff(want, blocks); diff != "" {
			t.Errorf("next steps mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty group heading is omitted", func(t *testing.T) {
		t.Parallel()

		summary := model.NewSummary()
		summary.Record(model.IssueImagesWithoutAlt, model.SeverityMinor, model.PriorityLow)

		blocks := New(nil, WithSummary(summary)).NextSteps()
		if len(blocks) != 1 {
			t.Errorf("expected only the section heading, got %v", blocks)
		}
	})

	t.Run("no improvements", func(t *testing.T) {
		t.Parallel()

		blocks := New(nil, WithSummary(model.NewSummary())).NextSteps()
		if len(blocks) != 2 || blocks[1].Text != "There are no pending priority actions at this time." {
			t.Errorf("expected no-pending sentence, got %v", blocks)
		}
	})
}

// TestBuildSection tests that a panicking builder becomes a SectionError.
func TestBuildSection(t *testing.T) {
	t.Parallel()

	_, err := buildSection(SectionBuilder{
		Name:  SectionStrengths,
		Build: func() []Block { panic("boom") },
	})

	var sectionErr *SectionError
	if !errors.As(err, &sectionErr) {
		t.Fatalf("expected *SectionError, got %v", err)
	}
	if sectionErr.Section != SectionStrengths {
		t.Errorf("expected section %q, got %q", SectionStrengths, sectionErr.Section)
	}
	if !errors.Is(err, ErrSectionBuild) {
		t.Error("expected error to match ErrSectionBuild")
	}
}

// TestGuard tests placeholder substitution for failing fields.
func TestGuard(t *testing.T) {
	t.Parallel()

	if got := guard("def", func() string { panic("boom") }); got != "def" {
		t.Errorf("expected default on panic, got %q", got)
	}
	if got := guard("def", func() string { return "" }); got != "def" {
		t.Errorf("expected default on empty, got %q", got)
	}
	if got := guard("def", func() string { return "value" }); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
}
