package classifier

import (
	"log/slog"

	"github.com/nao1215/seoreport/internal/model"
)

// Rule is one classification check.
type Rule struct {
	// Issue is recorded when the rule fails.
	Issue model.Issue

	// Severity is the counter incremented when the rule fails.
	Severity model.Severity

	// Priority is attached to the recorded improvement.
	Priority model.Priority

	// Category is the top-level results key the rule inspects.
	// The rule is skipped when the category is missing or empty.
	Category string

	// Fails reports whether the results exhibit the issue.
	Fails func(r model.Results) bool
}

// rules is the ordered rule table.
//
// Design decision: A rule only runs when the mapping that holds its field
// has entries. This keeps empty or partial results in good condition
// instead of reporting every check as failed, while a present mapping with
// a missing flag is still treated as failing.
var rules = []Rule{
	{
		Issue:    model.IssueMissingDoctype,
		Severity: model.SeverityModerate,
		Priority: model.PriorityMedium,
		Category: model.CategoryTechnicalSEO,
		Fails: func(r model.Results) bool {
			structure := r.Lookup(model.CategoryTechnicalSEO, "html_structure")
			return structure.HasEntries() && !structure.Lookup("has_doctype").BoolOr(false)
		},
	},
	{
		Issue:    model.IssueUnoptimizedTitle,
		Severity: model.SeverityCritical,
		Priority: model.PriorityHigh,
		Category: model.CategoryMetaData,
		Fails: func(r model.Results) bool {
			title := r.Lookup(model.CategoryMetaData, "title_tag")
			return title.HasEntries() && title.Lookup("optimal_length").Equals("bad")
		},
	},
	{
		Issue:    model.IssueImagesWithoutAlt,
		Severity: model.SeverityMinor,
		Priority: model.PriorityLow,
		Category: model.CategoryMetaData,
		Fails: func(r model.Results) bool {
			alt := r.Lookup(model.CategoryMetaData, "img_alt")
			return alt.HasEntries() && alt.Lookup("without_alt").FloatOr(0) > 0
		},
	},
	{
		Issue:    model.IssueNonResponsiveDesign,
		Severity: model.SeverityCritical,
		Priority: model.PriorityHigh,
		Category: model.CategoryMobile,
		Fails: func(r model.Results) bool {
			responsive := r.Lookup(model.CategoryMobile, "responsive_design")
			return responsive.HasEntries() && !responsive.Lookup("has_fluid_images").BoolOr(false)
		},
	},
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classifier turns analysis results into a Summary.
type Classifier struct {
	logger *slog.Logger
	rules  []Rule
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used to trace detected issues.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// New creates a Classifier with the standard rule table.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		rules: rules,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Classify evaluates every rule against the results and returns a fresh
// Summary. It never fails: empty or malformed results yield the default
// summary in good condition.
func (c *Classifier) Classify(results model.Results) *model.Summary {
	summary := model.NewSummary()

	for _, rule := range c.rules {
		if !results.Lookup(rule.Category).HasEntries() {
			continue
		}
		if !rule.Fails(results) {
			continue
		}

		summary.Record(rule.Issue, rule.Severity, rule.Priority)
		c.logger.Debug("issue detected",
			"issue", string(rule.Issue),
			"severity", rule.Severity.String(),
			"priority", string(rule.Priority),
		)
	}

	summary.Refresh()
	return summary
}

// Classify is a convenience wrapper around New().Classify.
func Classify(results model.Results) *model.Summary {
	return New().Classify(results)
}
