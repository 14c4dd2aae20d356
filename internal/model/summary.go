package model

// Improvement is one prioritized issue of the action plan.
type Improvement struct {
	// Issue identifies the detected issue.
	Issue Issue `json:"issue"`

	// Priority is the urgency of the issue.
	Priority Priority `json:"priority"`
}

// NewImprovement creates an Improvement from free-form values.
// Priority spellings are normalized through ParsePriority.
func NewImprovement(issue, priority string) Improvement {
	p, _ := ParsePriority(priority)
	return Improvement{Issue: Issue(issue), Priority: p}
}

// Valid reports whether the improvement names an issue.
// Invalid entries are skipped by every section that lists improvements.
func (i Improvement) Valid() bool {
	return i.Issue != ""
}

// Summary is the result of classifying an analysis.
// It is rebuilt from scratch on every classification pass and never
// persisted between exports.
type Summary struct {
	// CriticalIssues is the number of critical issues.
	CriticalIssues int `json:"critical_issues"`

	// ModerateIssues is the number of moderate issues.
	ModerateIssues int `json:"moderate_issues"`

	// MinorIssues is the number of minor issues.
	MinorIssues int `json:"minor_issues"`

	// TotalIssues is always CriticalIssues + ModerateIssues + MinorIssues.
	TotalIssues int `json:"total_issues"`

	// OverallStatus is derived from the counters by StatusFor.
	OverallStatus Status `json:"overall_status"`

	// PriorityImprovements lists detected issues in rule evaluation order.
	PriorityImprovements []Improvement `json:"priority_improvements"`
}

// NewSummary returns an empty summary in good condition.
func NewSummary() *Summary {
	return &Summary{
		OverallStatus:        StatusGood,
		PriorityImprovements: make([]Improvement, 0),
	}
}

// Record registers one detected issue.
// It increments exactly one severity counter and appends the improvement,
// then refreshes the derived fields.
func (s *Summary) Record(issue Issue, severity Severity, priority Priority) {
	switch severity {
	case SeverityCritical:
		s.CriticalIssues++
	case SeverityModerate:
		s.ModerateIssues++
	default:
		s.MinorIssues++
	}
	s.PriorityImprovements = append(s.PriorityImprovements, Improvement{
		Issue:    issue,
		Priority: priority,
	})
	s.Refresh()
}

// Refresh recomputes TotalIssues and OverallStatus from the counters.
func (s *Summary) Refresh() {
	s.TotalIssues = s.CriticalIssues + s.ModerateIssues + s.MinorIssues
	s.OverallStatus = StatusFor(s.CriticalIssues, s.ModerateIssues)
}

// HasImprovements reports whether any improvement was recorded.
func (s *Summary) HasImprovements() bool {
	return s != nil && len(s.PriorityImprovements) > 0
}

// ImprovementsByPriority returns the valid improvements with the given
// priority, preserving their order. Priorities are compared after
// normalization, so "alta" matches PriorityHigh.
func (s *Summary) ImprovementsByPriority(priority Priority) []Improvement {
	if s == nil {
		return nil
	}
	var out []Improvement
	for _, imp := range s.PriorityImprovements {
		if imp.Valid() && imp.Priority.Normalize() == priority.Normalize() {
			out = append(out, imp)
		}
	}
	return out
}
