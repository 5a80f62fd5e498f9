package llm

import (
	"context"
	"log"

	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// Fallback tries the primary generator and degrades to the backup when
// it fails. This is the deliberate degrade-not-fail policy for the live
// path; the orchestrator stays unaware of it.
type Fallback struct {
	Primary generation.Generator
	Backup  generation.Generator
}

var _ generation.Generator = Fallback{}

func (f Fallback) Generate(ctx context.Context, intake domain.Intake, references []string) (*generation.Result, error) {
	result, err := f.Primary.Generate(ctx, intake, references)
	if err == nil {
		return result, nil
	}
	log.Printf("[warn] operation=generate message=primary generator failed, using mock error=%v", err)
	return f.Backup.Generate(ctx, intake, references)
}
