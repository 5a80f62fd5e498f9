// Package postgres is the pgx-backed storage backend, selected when
// DB_DSN is configured. Version history and document-id lists are kept
// as jsonb columns; the intake fields stay scalar for ad-hoc querying.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id               text PRIMARY KEY,
	name             text NOT NULL,
	industry         text NOT NULL DEFAULT '',
	business_problem text NOT NULL DEFAULT '',
	goals            text NOT NULL DEFAULT '',
	stakeholders     text NOT NULL DEFAULT '',
	timelines        text NOT NULL DEFAULT '',
	created_at       timestamptz NOT NULL,
	updated_at       timestamptz NOT NULL,
	document_ids     jsonb NOT NULL DEFAULT '[]',
	versions         jsonb NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS documents (
	id           text PRIMARY KEY,
	filename     text NOT NULL,
	content_type text NOT NULL,
	text_body    text NOT NULL,
	metadata     jsonb NOT NULL DEFAULT '{}'
);
`

// Store bundles the pgx-backed repositories.
type Store struct {
	pool      *pgxpool.Pool
	projects  *ProjectStore
	documents *DocumentStore
}

// Open connects, pings and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.New(cctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, 2*time.Second)
	defer pcancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{
		pool:      pool,
		projects:  &ProjectStore{pool: pool},
		documents: &DocumentStore{pool: pool},
	}, nil
}

func (s *Store) Projects() *ProjectStore   { return s.projects }
func (s *Store) Documents() *DocumentStore { return s.documents }
func (s *Store) Close()                    { s.pool.Close() }

// Ping reports connectivity for health checks.
func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// ProjectStore implements repository.ProjectRepository on Postgres.
type ProjectStore struct {
	pool *pgxpool.Pool
}

func (s *ProjectStore) Create(ctx context.Context, intake domain.Intake) (*domain.Project, error) {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:              uuid.NewString(),
		Name:            intake.Name,
		Industry:        intake.Industry,
		BusinessProblem: intake.BusinessProblem,
		Goals:           intake.Goals,
		Stakeholders:    intake.Stakeholders,
		Timelines:       intake.Timelines,
		CreatedAt:       now,
		UpdatedAt:       now,
		DocumentIDs:     []string{},
		Versions:        []domain.Version{},
	}

	const q = `
INSERT INTO projects (id, name, industry, business_problem, goals, stakeholders, timelines,
                      created_at, updated_at, document_ids, versions)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '[]', '[]');
`
	_, err := s.pool.Exec(ctx, q,
		p.ID, p.Name, p.Industry, p.BusinessProblem, p.Goals, p.Stakeholders, p.Timelines,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (s *ProjectStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	const q = `
SELECT id, name, industry, business_problem, goals, stakeholders, timelines,
       created_at, updated_at, document_ids, versions
FROM projects WHERE id = $1;
`
	p, err := scanProject(s.pool.QueryRow(ctx, q, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, name, industry, business_problem, goals, stakeholders, timelines,
       created_at, updated_at, document_ids, versions
FROM projects ORDER BY created_at DESC;
`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	docIDs, err := json.Marshal(project.DocumentIDs)
	if err != nil {
		return err
	}
	versions, err := json.Marshal(project.Versions)
	if err != nil {
		return err
	}

	const q = `
UPDATE projects
SET name = $2, industry = $3, business_problem = $4, goals = $5, stakeholders = $6,
    timelines = $7, updated_at = $8, document_ids = $9, versions = $10
WHERE id = $1;
`
	tag, err := s.pool.Exec(ctx, q,
		project.ID, project.Name, project.Industry, project.BusinessProblem,
		project.Goals, project.Stakeholders, project.Timelines,
		project.UpdatedAt, docIDs, versions)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		p        domain.Project
		docIDs   []byte
		versions []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Industry, &p.BusinessProblem, &p.Goals,
		&p.Stakeholders, &p.Timelines, &p.CreatedAt, &p.UpdatedAt, &docIDs, &versions)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(docIDs, &p.DocumentIDs); err != nil {
		return nil, fmt.Errorf("decode document_ids: %w", err)
	}
	if err := json.Unmarshal(versions, &p.Versions); err != nil {
		return nil, fmt.Errorf("decode versions: %w", err)
	}
	if p.DocumentIDs == nil {
		p.DocumentIDs = []string{}
	}
	if p.Versions == nil {
		p.Versions = []domain.Version{}
	}
	return &p, nil
}

// DocumentStore implements repository.DocumentRepository on Postgres.
type DocumentStore struct {
	pool *pgxpool.Pool
}

func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}
	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO documents (id, filename, content_type, text_body, metadata)
VALUES ($1, $2, $3, $4, $5);
`
	if _, err := s.pool.Exec(ctx, q, doc.ID, doc.Filename, doc.ContentType, doc.Text, meta); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *DocumentStore) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	const q = `
SELECT id, filename, content_type, text_body, metadata FROM documents WHERE id = $1;
`
	doc, err := scanDocument(s.pool.QueryRow(ctx, q, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentStore) BulkGet(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(documentIDs))
	for _, id := range documentIDs {
		doc, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrDocumentNotFound) {
				return nil, fmt.Errorf("document %s: %w", id, domain.ErrDocumentNotFound)
			}
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		doc  domain.Document
		meta []byte
	)
	if err := row.Scan(&doc.ID, &doc.Filename, &doc.ContentType, &doc.Text, &meta); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(meta, &doc.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &doc, nil
}
