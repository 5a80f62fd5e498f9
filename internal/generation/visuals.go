package generation

import (
	"fmt"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// DefaultMermaid is the fallback requirement mindmap used when the
// generator returns no diagram of its own.
func DefaultMermaid(projectName string) string {
	return fmt.Sprintf("```mermaid\nmindmap\n  root((%s))\n    Planning\n      Gather requirements\n      Align stakeholders\n    Delivery\n      Build solution\n      Validate outcomes\n    Risks\n      Dependencies\n      Compliance\n```", projectName)
}

// DefaultStakeholderSummaries fills the three audience blocks when the
// generator leaves them empty.
func DefaultStakeholderSummaries() domain.StakeholderSummaries {
	return domain.StakeholderSummaries{
		Executives:    "Strategic overview pending clarification.",
		TechnicalTeam: "Technical deep dive to be refined after architecture review.",
		NonTechnical:  "User-facing summary will be refined with stakeholder input.",
	}
}
