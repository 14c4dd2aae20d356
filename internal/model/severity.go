package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity represents how strongly an issue affects the site's SEO.
// Each detected issue increments exactly one severity counter.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityMinor indicates cosmetic or accessibility issues with limited
	// ranking impact, such as images without alt text.
	SeverityMinor Severity = iota

	// SeverityModerate indicates structural issues that should be fixed,
	// such as a missing DOCTYPE declaration.
	SeverityModerate

	// SeverityCritical indicates issues that directly hurt ranking or
	// usability, such as an unoptimized title or a non-responsive layout.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityMinor:
		return "MINOR"
	case SeverityModerate:
		return "MODERATE"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Priority is the qualitative urgency attached to a detected issue.
// It drives the grouping of the next steps section.
type Priority string

const (
	// PriorityHigh issues are listed as immediate actions.
	PriorityHigh Priority = "high"
	// PriorityMedium issues are listed in the mid-term plan.
	PriorityMedium Priority = "medium"
	// PriorityLow issues only appear in the action plan.
	PriorityLow Priority = "low"
)

// priorityAliases maps accepted spellings to priorities.
// The Spanish spellings are the ones emitted by the legacy analyzer.
var priorityAliases = map[string]Priority{
	"high":   PriorityHigh,
	"alta":   PriorityHigh,
	"medium": PriorityMedium,
	"media":  PriorityMedium,
	"low":    PriorityLow,
	"baja":   PriorityLow,
}

// ParsePriority converts a priority spelling into a Priority.
// Unknown spellings are returned unchanged with ok set to false.
func ParsePriority(s string) (Priority, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := priorityAliases[key]; ok {
		return p, true
	}
	return Priority(s), false
}

// Normalize maps accepted spellings onto the canonical priority.
// Unknown spellings are returned unchanged.
func (p Priority) Normalize() Priority {
	n, _ := ParsePriority(string(p))
	return n
}

// Label returns the priority for display ("High", "Medium", "Low").
func (p Priority) Label() string {
	if p == "" {
		return "Not specified"
	}
	return cases.Title(language.English).String(string(p.Normalize()))
}

// Status is the overall condition of the analyzed site.
type Status string

const (
	// StatusCritical means at least one critical issue was found.
	StatusCritical Status = "critical"
	// StatusNeedsImprovement means moderate issues but no critical ones were found.
	StatusNeedsImprovement Status = "needs_improvement"
	// StatusGood means no critical or moderate issues were found.
	StatusGood Status = "good"
)

// StatusFor derives the overall status from the severity counters.
// Critical issues win over moderate ones; minor issues alone keep the
// site in good condition.
func StatusFor(critical, moderate int) Status {
	switch {
	case critical > 0:
		return StatusCritical
	case moderate > 0:
		return StatusNeedsImprovement
	default:
		return StatusGood
	}
}

// Label returns the status for display.
func (s Status) Label() string {
	switch s {
	case StatusCritical:
		return "Needs critical improvements"
	case StatusNeedsImprovement:
		return "Needs improvements"
	case StatusGood:
		return "Good condition"
	default:
		return "Not analyzed"
	}
}
