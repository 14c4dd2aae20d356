package document

import (
	"strconv"

	"github.com/nao1215/seoreport/internal/model"
)

// Placeholder and status strings shared by the section builders.
const (
	NotAvailable     = "Not available"
	StatusOK         = "OK"
	NeedsImprovement = "Needs improvement"
	StatusReview     = "Review"

	dateLayout = "02/01/2006"
)

// Cover builds the cover page: title, analyzed URL, analysis date and plan.
func (a *Assembler) Cover() []Block {
	url := guard(NotAvailable, func() string {
		return a.results.URL(NotAvailable)
	})
	date := guard(NotAvailable, func() string {
		return a.now().Format(dateLayout)
	})

	return []Block{
		CenteredHeading(LevelTitle, a.title),
		Spacer(30),
		CenteredHeading(LevelSubtitle, "Analyzed URL: "+url),
		Paragraph("Analysis date: " + date),
		Spacer(30),
		CenteredHeading(LevelSubtitle, a.planName),
		Spacer(30),
	}
}

// ExecutiveSummary builds the two-column table of the summary counters.
func (a *Assembler) ExecutiveSummary() []Block {
	s := a.Summary()

	return []Block{
		Heading(LevelSection, "Executive Summary"),
		NewTable(
			[]float64{200, 300},
			[]string{"Metric", "Value"},
			[]string{"Overall status", s.OverallStatus.Label()},
			[]string{"Critical issues", strconv.Itoa(s.CriticalIssues)},
			[]string{"Moderate issues", strconv.Itoa(s.ModerateIssues)},
			[]string{"Minor issues", strconv.Itoa(s.MinorIssues)},
			[]string{"Total issues", strconv.Itoa(s.TotalIssues)},
		),
	}
}

// Strengths builds the bulleted list of positive signals.
func (a *Assembler) Strengths() []Block {
	blocks := []Block{Heading(LevelSection, "Site Strengths")}

	strengths := IdentifyStrengths(a.results)
	if len(strengths) == 0 {
		return append(blocks, Paragraph("No significant strengths were identified in this evaluation."))
	}

	for _, s := range strengths {
		blocks = append(blocks, Bullet(s))
	}
	return blocks
}

// ActionPlan builds one entry per prioritized improvement.
func (a *Assembler) ActionPlan() []Block {
	blocks := []Block{Heading(LevelSection, "Detailed Action Plan")}

	// Only an empty list gets the notice; malformed entries leave just the heading.
	if !a.Summary().HasImprovements() {
		return append(blocks, Paragraph("No issues requiring immediate action were identified."))
	}

	items := ActionItems(a.Summary(), a.results)

	for _, item := range items {
		blocks = append(blocks,
			Heading(LevelSubsection, item.Title+" (Priority: "+item.Priority.Label()+")"),
			Bullet("Current state:"),
			Indented(item.CurrentState),
			Bullet("Recommended solution:"),
			Indented(item.Solution),
			Bullet("Implementation steps:"),
		)
		for _, step := range item.Steps {
			blocks = append(blocks, Indented("- "+step))
		}
		blocks = append(blocks,
			Bullet("Expected benefit:"),
			Indented(item.Benefit),
			Spacer(10),
		)
	}
	return blocks
}

// NextSteps groups high priority improvements as immediate actions and
// medium priority improvements as the mid-term plan. Low priority
// improvements are not listed.
func (a *Assembler) NextSteps() []Block {
	blocks := []Block{Heading(LevelSection, "Recommended Next Steps")}

	s := a.Summary()
	if !s.HasImprovements() {
		return append(blocks, Paragraph("There are no pending priority actions at this time."))
	}

	groups := []struct {
		title    string
		priority model.Priority
	}{
		{"Immediate Actions (Quick Wins):", model.PriorityHigh},
		{"Mid-Term Plan:", model.PriorityMedium},
	}

	for _, g := range groups {
		members := s.ImprovementsByPriority(g.priority)
		if len(members) == 0 {
			continue
		}
		blocks = append(blocks, Heading(LevelSubsection, g.title))
		for _, imp := range members {
			blocks = append(blocks, Bullet(imp.Issue.Title()))
		}
	}
	return blocks
}
