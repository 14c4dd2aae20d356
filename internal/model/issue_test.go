package model

import (
	"strings"
	"testing"
)

// TestIssueCatalogCompleteness verifies every known issue has full metadata.
func TestIssueCatalogCompleteness(t *testing.T) {
	t.Parallel()

	for _, issue := range KnownIssues() {
		t.Run(string(issue), func(t *testing.T) {
			t.Parallel()

			info, ok := LookupIssue(issue)
			if !ok {
				t.Fatalf("expected catalog entry for %q", issue)
			}
			if info.Title == "" {
				t.Error("expected non-empty title")
			}
			if Solution(issue) == DefaultSolution {
				t.Error("expected specific solution")
			}
			if ExpectedBenefit(issue) == DefaultExpectedBenefit {
				t.Error("expected specific benefit")
			}
			steps := ImplementationSteps(issue)
			if len(steps) < 3 {
				t.Errorf("expected at least 3 steps, got %d", len(steps))
			}
			if state := CurrentState(issue, Results{}); state == DefaultCurrentState || state == "" {
				t.Errorf("expected specific current state, got %q", state)
			}
		})
	}
}

// TestIssueCatalogDefaults verifies the documented defaults for unknown issues.
func TestIssueCatalogDefaults(t *testing.T) {
	t.Parallel()

	unknown := Issue("Broken canonical tag")

	if got := Solution(unknown); got != DefaultSolution {
		t.Errorf("expected %q, got %q", DefaultSolution, got)
	}
	if got := ExpectedBenefit(unknown); got != DefaultExpectedBenefit {
		t.Errorf("expected %q, got %q", DefaultExpectedBenefit, got)
	}
	steps := ImplementationSteps(unknown)
	if len(steps) != 1 || steps[0] != DefaultImplementation {
		t.Errorf("expected single placeholder step, got %v", steps)
	}
	if got := CurrentState(unknown, Results{}); got != DefaultCurrentState {
		t.Errorf("expected %q, got %q", DefaultCurrentState, got)
	}
	if got := unknown.Title(); got != "Broken canonical tag" {
		t.Errorf("expected unknown issue to be displayed verbatim, got %q", got)
	}
	if got := Issue("  ").Title(); got != DefaultIssueTitle {
		t.Errorf("expected %q, got %q", DefaultIssueTitle, got)
	}
}

// TestFormatStateRecoversPanics tests that a failing formatter yields a
// state distinct from the unknown-issue default.
func TestFormatStateRecoversPanics(t *testing.T) {
	t.Parallel()

	got := formatState(func(Results) string { panic("bad data") }, Results{})
	if got != UnavailableState {
		t.Errorf("expected %q, got %q", UnavailableState, got)
	}
	if got == DefaultCurrentState {
		t.Error("expected a formatter failure to differ from the unknown-issue default")
	}

	if got := formatState(func(Results) string { return "ok" }, Results{}); got != "ok" {
		t.Errorf("expected formatter output, got %q", got)
	}
}

// TestImplementationStepsReturnsCopy ensures callers cannot mutate the catalog.
func TestImplementationStepsReturnsCopy(t *testing.T) {
	t.Parallel()

	steps := ImplementationSteps(IssueMissingDoctype)
	steps[0] = "mutated"

	if ImplementationSteps(IssueMissingDoctype)[0] == "mutated" {
		t.Error("expected catalog steps to be unaffected by caller mutation")
	}
}

// TestCurrentStateUsesResults tests that current state reads the analysis data.
func TestCurrentStateUsesResults(t *testing.T) {
	t.Parallel()

	r := Results{
		CategoryMetaData: map[string]any{
			"title_tag": map[string]any{"length": 72},
			"img_alt":   map[string]any{"without_alt": 5},
		},
	}

	if got := CurrentState(IssueUnoptimizedTitle, r); !strings.Contains(got, "72 characters") {
		t.Errorf("expected title length in state, got %q", got)
	}
	if got := CurrentState(IssueImagesWithoutAlt, r); got != "5 images without alt text" {
		t.Errorf("unexpected state %q", got)
	}
}
