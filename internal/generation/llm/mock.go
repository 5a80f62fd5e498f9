package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// Mock is the deterministic Generator used when no API credential is
// configured (and as the degrade path when the live call fails). Equal
// inputs always produce byte-identical output.
type Mock struct{}

var _ generation.Generator = Mock{}

func (Mock) Generate(ctx context.Context, intake domain.Intake, references []string) (*generation.Result, error) {
	trimmed := make([]string, 0, len(references))
	for _, ref := range references {
		if len(ref) > 2000 {
			ref = ref[:2000]
		}
		trimmed = append(trimmed, ref)
	}
	referenceSummary := strings.Join(trimmed, "\n")
	if referenceSummary == "" {
		referenceSummary = "No references provided."
	}

	brd := fmt.Sprintf(`# %s - Business Requirements Document

## Executive Summary
This project addresses %s with the primary goal of %s. The initiative targets the %s industry and involves stakeholders: %s.

## Business Objectives
- Align project outcomes with stated goals.
- Deliver measurable value within %s.

## Scope
**In Scope**
- Core functional capabilities required to meet goals.

**Out of Scope**
- Items not aligned to MVP timeline.

## Functional Requirements
1. System must support documentation ingestion and analysis.
2. Platform generates BRDs using AI guidance.

## Non-Functional Requirements
- Ensure data is stored securely on local infrastructure.

## Assumptions
- Stakeholders will provide timely feedback.

## Constraints
- Limited access to production-like data during MVP.

## Acceptance Criteria
`+"```gherkin"+`
Scenario: Generate BRD draft
  Given a project with uploaded reference documents
  When the analyst triggers the AI generation
  Then a BRD draft is produced with key sections populated
`+"```"+`

## Risks & Mitigation Strategies
- Risk: Delayed stakeholder approvals. Mitigation: Establish review checkpoints.

## Timeline Overview
The project follows the stated timelines: %s.

## Dependencies
- Timely availability of SMEs and uploaded reference materials.

## Gap Analysis
- Missing Information: Detailed performance requirements.
- Clarifying Questions: What SLAs are expected post-launch?

## Stakeholder Summaries
- Executives: Focus on strategic alignment and ROI.
- Technical Team: Emphasize system integrations and data flows.
- Non-Technical: Highlight user outcomes and rollout plan.

## Reference Highlights
%s`,
		intake.Name,
		intake.BusinessProblem,
		intake.Goals,
		intake.Industry,
		intake.Stakeholders,
		intake.Timelines,
		intake.Timelines,
		referenceSummary,
	)

	diagram := "```mermaid\nmindmap\n  root((Project Vision))\n    Objectives\n      Deliver BRD automation\n      Support stakeholder collaboration\n    Requirements\n      Functional\n        Document ingestion\n        AI draft generation\n      Non-Functional\n        Security\n        Performance\n    Timeline\n      Planning\n      Execution\n      Launch\n```"

	return &generation.Result{
		BRDMarkdown:    brd,
		MermaidDiagram: diagram,
		GapAnalysis: domain.GapAnalysis{
			MissingInformation:  []string{"Detailed reporting requirements", "Integration specifications"},
			ClarifyingQuestions: []string{"Are there compliance considerations?", "What user roles require access?"},
		},
		StakeholderSummaries: domain.StakeholderSummaries{
			Executives:    "Concise overview highlighting strategic benefits and ROI expectations.",
			TechnicalTeam: "Focus on integrations, data flows, and infrastructure impacts.",
			NonTechnical:  "Emphasize user experience improvements and training considerations.",
		},
	}, nil
}
