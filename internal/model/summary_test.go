package model

import "testing"

// TestNewSummary verifies the default summary.
func TestNewSummary(t *testing.T) {
	t.Parallel()

	s := NewSummary()
	if s.OverallStatus != StatusGood {
		t.Errorf("expected good status, got %q", s.OverallStatus)
	}
	if s.TotalIssues != 0 {
		t.Errorf("expected no issues, got %d", s.TotalIssues)
	}
	if s.PriorityImprovements == nil || len(s.PriorityImprovements) != 0 {
		t.Errorf("expected empty non-nil improvements, got %v", s.PriorityImprovements)
	}
	if s.HasImprovements() {
		t.Error("expected no improvements")
	}
}

// TestSummaryRecord verifies counters, totals and status after recording issues.
func TestSummaryRecord(t *testing.T) {
	t.Parallel()

	s := NewSummary()
	s.Record(IssueImagesWithoutAlt, SeverityMinor, PriorityLow)
	if s.OverallStatus != StatusGood {
		t.Errorf("expected minor issues to keep good status, got %q", s.OverallStatus)
	}

	s.Record(IssueMissingDoctype, SeverityModerate, PriorityMedium)
	if s.OverallStatus != StatusNeedsImprovement {
		t.Errorf("expected needs_improvement, got %q", s.OverallStatus)
	}

	s.Record(IssueUnoptimizedTitle, SeverityCritical, PriorityHigh)
	if s.OverallStatus != StatusCritical {
		t.Errorf("expected critical, got %q", s.OverallStatus)
	}

	if s.TotalIssues != s.CriticalIssues+s.ModerateIssues+s.MinorIssues {
		t.Errorf("total %d does not match counters", s.TotalIssues)
	}
	if s.TotalIssues != 3 {
		t.Errorf("expected 3 issues, got %d", s.TotalIssues)
	}
	if len(s.PriorityImprovements) != 3 {
		t.Fatalf("expected 3 improvements, got %d", len(s.PriorityImprovements))
	}
	if s.PriorityImprovements[0].Issue != IssueImagesWithoutAlt {
		t.Errorf("expected record order to be preserved, got %v", s.PriorityImprovements)
	}
}

// TestImprovementsByPriority verifies grouping and skipping of malformed entries.
func TestImprovementsByPriority(t *testing.T) {
	t.Parallel()

	s := &Summary{
		PriorityImprovements: []Improvement{
			NewImprovement("A", "alta"),
			NewImprovement("B", "media"),
			NewImprovement("C", "baja"),
			NewImprovement("", "alta"),
			NewImprovement("D", "high"),
		},
	}

	high := s.ImprovementsByPriority(PriorityHigh)
	if len(high) != 2 || high[0].Issue != "A" || high[1].Issue != "D" {
		t.Errorf("unexpected high priority group %v", high)
	}

	medium := s.ImprovementsByPriority(PriorityMedium)
	if len(medium) != 1 || medium[0].Issue != "B" {
		t.Errorf("unexpected medium priority group %v", medium)
	}

	literal := &Summary{PriorityImprovements: []Improvement{{Issue: "E", Priority: "ALTA"}}}
	if got := literal.ImprovementsByPriority(PriorityHigh); len(got) != 1 || got[0].Issue != "E" {
		t.Errorf("expected literal alias to match high priority, got %v", got)
	}

	var nilSummary *Summary
	if nilSummary.ImprovementsByPriority(PriorityHigh) != nil {
		t.Error("expected nil summary to yield no improvements")
	}
}
