package generation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/projects/repository"
)

// Service is the generation orchestrator: it resolves documents, calls
// the Generator and appends the resulting Version to the project.
type Service struct {
	projects  repository.ProjectRepository
	documents repository.DocumentRepository
	generator Generator
}

// NewService creates a generation service.
func NewService(projects repository.ProjectRepository, documents repository.DocumentRepository, generator Generator) *Service {
	return &Service{projects: projects, documents: documents, generator: generator}
}

// Generate drafts a new version for the project. documentIDs selects the
// references to feed the generator; when empty, the project's attached
// documents are used. Any unknown document id fails the whole call
// before the generator runs.
func (s *Service) Generate(ctx context.Context, projectID string, documentIDs []string) (*domain.Project, *domain.Version, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	ids := documentIDs
	if len(ids) == 0 {
		ids = project.DocumentIDs
	}
	documents, err := s.documents.BulkGet(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	references := make([]string, 0, len(documents))
	for _, doc := range documents {
		references = append(references, doc.Text)
	}

	result, err := s.generator.Generate(ctx, project.Intake(), references)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	version := s.buildVersion(project, result)
	project.AddVersion(version)
	for _, id := range documentIDs {
		project.AddDocument(id)
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, nil, fmt.Errorf("persist version: %w", err)
	}

	log.Printf("[info] operation=generate project_id=%s version_id=%s references=%d",
		project.ID, version.ID, len(references))
	return project, &version, nil
}

// buildVersion derives the analysis blocks from the generated markdown
// and backfills diagram and summaries when the generator omitted them.
func (s *Service) buildVersion(project *domain.Project, result *Result) domain.Version {
	diagram := result.MermaidDiagram
	if diagram == "" {
		diagram = DefaultMermaid(project.Name)
	}
	summaries := result.StakeholderSummaries
	if summaries == (domain.StakeholderSummaries{}) {
		summaries = DefaultStakeholderSummaries()
	}

	return domain.Version{
		ID:                   uuid.NewString(),
		CreatedAt:            time.Now().UTC(),
		BRDMarkdown:          result.BRDMarkdown,
		MermaidDiagram:       diagram,
		GapAnalysis:          BuildGapAnalysis(result.BRDMarkdown),
		StakeholderSummaries: summaries,
		PriorityMatrix:       PrioritizeRequirements(result.BRDMarkdown),
	}
}
