// Package generation turns a project's intake fields and reference
// documents into a new BRD version. The actual drafting is delegated to
// a Generator; everything here is orchestration and post-processing.
package generation

import (
	"context"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// Result is the structured output every Generator variant must produce.
// The live variant may leave everything but BRDMarkdown empty; the
// orchestrator fills the holes with derived defaults.
type Result struct {
	BRDMarkdown          string
	MermaidDiagram       string
	GapAnalysis          domain.GapAnalysis
	StakeholderSummaries domain.StakeholderSummaries
}

// Generator drafts a BRD from the intake fields and reference texts.
// Implementations: the OpenAI-backed client and the deterministic mock.
type Generator interface {
	Generate(ctx context.Context, intake domain.Intake, references []string) (*Result, error)
}
