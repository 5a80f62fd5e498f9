// Package llm provides the Generator implementations: a live
// OpenAI-backed client and a deterministic mock, plus the fallback
// composition used when mock degradation is allowed.
package llm

import (
	"strings"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

const masterPrompt = `You are an expert Business Analyst with 15+ years of experience in multiple industries.
Generate a detailed and professional Business Requirements Document (BRD) based on the provided inputs.

INPUT:
- Project Name: {project_name}
- Industry: {industry}
- Business Problem: {business_problem}
- Goals: {goals}
- Stakeholders: {stakeholders}
- Timelines: {timelines}
- Uploaded References: {uploaded_text_or_summary}

TASKS:
1. Create a BRD with the following sections:
   - Executive Summary
   - Business Objectives
   - Scope (In Scope / Out of Scope)
   - Functional Requirements
   - Non-Functional Requirements
   - Assumptions
   - Constraints
   - Acceptance Criteria (with Gherkin examples)
   - Risks & Mitigation Strategies
   - Timeline Overview
   - Dependencies

2. Adapt the tone and structure to match {industry} best practices.

3. Perform a gap analysis:
   - Flag unclear or missing requirements.
   - Suggest clarifying questions.

4. Generate a stakeholder-friendly summary for:
   - Executives
   - Technical teams
   - Non-technical stakeholders

5. Provide a visual requirement hierarchy in Mermaid.js format.

6. Suggest potential project risks based on provided info and industry context.

OUTPUT:
- Complete BRD in structured Markdown format.
- Separate section for summaries by stakeholder type.
- Mermaid.js code block for visualization.
`

// BuildPrompt renders the master prompt for one generation run.
func BuildPrompt(intake domain.Intake, references []string) string {
	merged := "No reference documents provided."
	if len(references) > 0 {
		merged = strings.Join(references, "\n\n")
	}
	return strings.NewReplacer(
		"{project_name}", intake.Name,
		"{industry}", intake.Industry,
		"{business_problem}", intake.BusinessProblem,
		"{goals}", intake.Goals,
		"{stakeholders}", intake.Stakeholders,
		"{timelines}", intake.Timelines,
		"{uploaded_text_or_summary}", merged,
	).Replace(masterPrompt)
}
