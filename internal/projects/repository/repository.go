// Package repository defines the persistence contracts for projects and
// uploaded documents. Implementations live under internal/storage.
package repository

import (
	"context"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// ProjectRepository persists project records and their version history.
type ProjectRepository interface {
	// Create stores a new project built from the intake fields.
	Create(ctx context.Context, intake domain.Intake) (*domain.Project, error)
	// Get returns the project or domain.ErrProjectNotFound.
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	// List returns all projects, newest first.
	List(ctx context.Context) ([]domain.Project, error)
	// Update overwrites the stored record for project.ID.
	Update(ctx context.Context, project *domain.Project) error
}

// DocumentRepository persists uploaded reference documents.
type DocumentRepository interface {
	// Save stores a new document record.
	Save(ctx context.Context, doc *domain.Document) error
	// Get returns the document or domain.ErrDocumentNotFound.
	Get(ctx context.Context, documentID string) (*domain.Document, error)
	// BulkGet resolves every id; any unknown id fails the whole call
	// with domain.ErrDocumentNotFound.
	BulkGet(ctx context.Context, documentIDs []string) ([]domain.Document, error)
}
