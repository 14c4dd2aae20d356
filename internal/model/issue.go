package model

import (
	"fmt"
	"strings"
)

// Issue identifies a known SEO issue.
// Values outside the declared constants can still arrive from external data,
// so every catalog lookup has a documented default.
type Issue string

const (
	// IssueMissingDoctype is reported when the page has no DOCTYPE declaration.
	IssueMissingDoctype Issue = "missing_doctype"

	// IssueUnoptimizedTitle is reported when the title tag length is rated bad.
	IssueUnoptimizedTitle Issue = "unoptimized_title"

	// IssueImagesWithoutAlt is reported when at least one image lacks alt text.
	IssueImagesWithoutAlt Issue = "images_without_alt"

	// IssueNonResponsiveDesign is reported when images are not fluid.
	IssueNonResponsiveDesign Issue = "non_responsive_design"

	// IssueUnoptimizedMetaDescription has a catalog entry, but no
	// classification rule currently reports it.
	IssueUnoptimizedMetaDescription Issue = "unoptimized_meta_description"
)

// Catalog defaults used when an issue is unknown or its entry cannot be
// formatted.
const (
	DefaultIssueTitle      = "Unspecified issue"
	DefaultCurrentState    = "No data available"
	UnavailableState       = "State not available"
	DefaultSolution        = "Solution not specified"
	DefaultImplementation  = "Implementation not specified"
	DefaultExpectedBenefit = "Benefit not specified"
)

// IssueInfo contains the remediation metadata of an issue.
type IssueInfo struct {
	// Title is the display name of the issue.
	Title string

	// Severity is the counter incremented when the issue is detected.
	Severity Severity

	// Priority is the urgency attached to the issue.
	Priority Priority

	// Solution is the recommended technical fix.
	Solution string

	// Steps are the ordered implementation steps.
	Steps []string

	// Benefit is the expected outcome once the issue is fixed.
	Benefit string

	// currentState describes the issue using the analysis data.
	currentState func(r Results) string
}

// issueCatalog maps issues to their remediation metadata.
//
// Design decision: We use a map rather than embedding the metadata in the
// classification rules because the action plan must also describe issues
// that arrive from outside the classifier, and a single table keeps the
// wording consistent across every output format.
var issueCatalog = map[Issue]IssueInfo{
	IssueUnoptimizedTitle: {
		Title:    "Unoptimized title",
		Severity: SeverityCritical,
		Priority: PriorityHigh,
		Solution: "Adjust the title to a length between 30 and 60 characters",
		Steps: []string{
			"Review the current title",
			"Include the main keywords",
			"Adjust the length to 30-60 characters",
			"Verify its relevance for the page",
		},
		Benefit: "Better search ranking and higher CTR",
		currentState: func(r Results) string {
			return fmt.Sprintf("Current title has %d characters",
				r.Lookup(CategoryMetaData, "title_tag", "length").IntOr(0))
		},
	},
	IssueNonResponsiveDesign: {
		Title:    "Non-responsive design",
		Severity: SeverityCritical,
		Priority: PriorityHigh,
		Solution: "Implement media queries and make images fluid",
		Steps: []string{
			"Add the viewport meta tag",
			"Add media queries",
			"Make images fluid",
			"Test on different devices",
		},
		Benefit: "Better mobile experience and better mobile ranking",
		currentState: func(Results) string {
			return "The page is missing responsive elements"
		},
	},
	IssueMissingDoctype: {
		Title:    "Missing DOCTYPE declaration",
		Severity: SeverityModerate,
		Priority: PriorityMedium,
		Solution: "Add <!DOCTYPE html> at the beginning of the document",
		Steps: []string{
			"Add <!DOCTYPE html> at the beginning of the document",
			"Verify the HTML structure",
			"Validate the HTML code",
		},
		Benefit: "Better rendering and cross-browser compatibility",
		currentState: func(Results) string {
			return "The page has no DOCTYPE declaration"
		},
	},
	IssueImagesWithoutAlt: {
		Title:    "Images without alt text",
		Severity: SeverityMinor,
		Priority: PriorityLow,
		Solution: "Add descriptive alt attributes to images",
		Steps: []string{
			"Identify images without alt",
			"Add relevant descriptions",
			"Verify accessibility",
		},
		Benefit: "Better accessibility and image SEO",
		currentState: func(r Results) string {
			return fmt.Sprintf("%d images without alt text",
				r.Lookup(CategoryMetaData, "img_alt", "without_alt").IntOr(0))
		},
	},
	IssueUnoptimizedMetaDescription: {
		Title:    "Unoptimized meta description",
		Severity: SeverityModerate,
		Priority: PriorityMedium,
		Solution: "Adjust the meta description to a length between 120 and 155 characters",
		Steps: []string{
			"Review the current meta description",
			"Include a clear call to action",
			"Adjust the length to 120-155 characters",
			"Verify relevance and appeal",
		},
		Benefit: "Higher visibility in search results and improved CTR",
		currentState: func(r Results) string {
			return fmt.Sprintf("Current meta description has %d characters",
				r.Lookup(CategoryMetaData, "meta_description", "length").IntOr(0))
		},
	},
}

// KnownIssues returns every issue with a catalog entry, in display order.
func KnownIssues() []Issue {
	return []Issue{
		IssueUnoptimizedTitle,
		IssueNonResponsiveDesign,
		IssueMissingDoctype,
		IssueImagesWithoutAlt,
		IssueUnoptimizedMetaDescription,
	}
}

// LookupIssue returns the catalog entry for an issue.
func LookupIssue(issue Issue) (IssueInfo, bool) {
	info, ok := issueCatalog[issue]
	return info, ok
}

// Title returns the display name of the issue.
// Unknown issues are displayed verbatim.
func (i Issue) Title() string {
	if info, ok := issueCatalog[i]; ok {
		return info.Title
	}
	if strings.TrimSpace(string(i)) == "" {
		return DefaultIssueTitle
	}
	return string(i)
}

// Solution returns the recommended solution for an issue.
func Solution(issue Issue) string {
	if info, ok := issueCatalog[issue]; ok && info.Solution != "" {
		return info.Solution
	}
	return DefaultSolution
}

// ImplementationSteps returns a copy of the ordered steps for an issue.
// Unknown issues yield a single placeholder step.
func ImplementationSteps(issue Issue) []string {
	if info, ok := issueCatalog[issue]; ok && len(info.Steps) > 0 {
		steps := make([]string, len(info.Steps))
		copy(steps, info.Steps)
		return steps
	}
	return []string{DefaultImplementation}
}

// ExpectedBenefit returns the expected benefit of fixing an issue.
func ExpectedBenefit(issue Issue) string {
	if info, ok := issueCatalog[issue]; ok && info.Benefit != "" {
		return info.Benefit
	}
	return DefaultExpectedBenefit
}

// CurrentState describes the current state of an issue using the analysis
// data. Unknown issues yield DefaultCurrentState; a formatter that panics
// yields UnavailableState.
func CurrentState(issue Issue, r Results) (state string) {
	info, ok := issueCatalog[issue]
	if !ok || info.currentState == nil {
		return DefaultCurrentState
	}
	return formatState(info.currentState, r)
}

// formatState runs a current-state formatter, turning a panic into
// UnavailableState.
func formatState(format func(Results) string, r Results) (state string) {
	defer func() {
		if recover() != nil {
			state = UnavailableState
		}
	}()

	return format(r)
}
