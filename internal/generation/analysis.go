package generation

import (
	"strings"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// BuildGapAnalysis flags topics the generated BRD never mentions.
// Both result slices are non-nil even when empty.
func BuildGapAnalysis(brdMarkdown string) domain.GapAnalysis {
	lower := strings.ToLower(brdMarkdown)
	gap := domain.GapAnalysis{
		MissingInformation:  []string{},
		ClarifyingQuestions: []string{},
	}
	if !strings.Contains(lower, "performance") {
		gap.MissingInformation = append(gap.MissingInformation, "Performance benchmarks")
	}
	if !strings.Contains(lower, "integration") {
		gap.ClarifyingQuestions = append(gap.ClarifyingQuestions, "Which systems require integration?")
	}
	if !strings.Contains(lower, "security") {
		gap.MissingInformation = append(gap.MissingInformation, "Security requirements detail")
	}
	return gap
}

// PrioritizeRequirements scans the BRD for requirement-looking lines and
// assigns MoSCoW labels: a keyword on the line wins, otherwise the label
// rotates with the line number.
func PrioritizeRequirements(brdMarkdown string) []domain.PriorityEntry {
	priorities := []domain.PriorityEntry{}
	for i, line := range strings.Split(brdMarkdown, "\n") {
		idx := i + 1
		lower := strings.ToLower(line)
		if !strings.HasPrefix(lower, "1.") && !strings.HasPrefix(lower, "-") {
			continue
		}
		var bucket string
		switch {
		case strings.Contains(lower, "must"):
			bucket = domain.PriorityMust
		case strings.Contains(lower, "should"):
			bucket = domain.PriorityShould
		case strings.Contains(lower, "could"):
			bucket = domain.PriorityCould
		default:
			bucket = domain.MoSCoWCategories[idx%len(domain.MoSCoWCategories)]
		}
		priorities = append(priorities, domain.PriorityEntry{
			Requirement: strings.Trim(line, "- "),
			Priority:    bucket,
		})
	}
	return priorities
}
