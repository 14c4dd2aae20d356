package document

import (
	"github.com/nao1215/seoreport/internal/model"
)

// ActionItem is the remediation detail of one prioritized improvement.
type ActionItem struct {
	Issue        model.Issue    `json:"issue"`
	Title        string         `json:"title"`
	Priority     model.Priority `json:"priority"`
	CurrentState string         `json:"current_state"`
	Solution     string         `json:"solution"`
	Steps        []string       `json:"steps"`
	Benefit      string         `json:"benefit"`
}

// ActionItems resolves the catalog entry of every valid improvement.
// Unknown issues get the catalog defaults; invalid entries are skipped.
func ActionItems(s *model.Summary, r model.Results) []ActionItem {
	if !s.HasImprovements() {
		return nil
	}

	items := make([]ActionItem, 0, len(s.PriorityImprovements))
	for _, imp := range s.PriorityImprovements {
		if !imp.Valid() {
			continue
		}
		items = append(items, ActionItem{
			Issue:        imp.Issue,
			Title:        imp.Issue.Title(),
			Priority:     imp.Priority.Normalize(),
			CurrentState: guard(model.DefaultCurrentState, func() string { return model.CurrentState(imp.Issue, r) }),
			Solution:     model.Solution(imp.Issue),
			Steps:        model.ImplementationSteps(imp.Issue),
			Benefit:      model.ExpectedBenefit(imp.Issue),
		})
	}
	return items
}
