// Package jsonstore is the default storage backend: one JSON file per
// collection under <data_dir>/storage, read-modify-write under a mutex.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// collection is a JSON file holding a map of id -> record.
type collection struct {
	mu   sync.Mutex
	path string
}

func openCollection(dir, filename string) (*collection, error) {
	c := &collection{path: filepath.Join(dir, filename)}
	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		if err := os.WriteFile(c.path, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("init %s: %w", filename, err)
		}
	}
	return c, nil
}

func (c *collection) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return out, nil
}

func (c *collection) write(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, raw, 0o644)
}

// Store bundles the project and document collections for one data dir.
type Store struct {
	projects  *ProjectStore
	documents *DocumentStore
}

// Open prepares <dataDir>/storage and its collection files.
func Open(dataDir string) (*Store, error) {
	dir := filepath.Join(dataDir, "storage")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	pc, err := openCollection(dir, "projects.json")
	if err != nil {
		return nil, err
	}
	dc, err := openCollection(dir, "documents.json")
	if err != nil {
		return nil, err
	}
	return &Store{
		projects:  &ProjectStore{col: pc},
		documents: &DocumentStore{col: dc},
	}, nil
}

func (s *Store) Projects() *ProjectStore   { return s.projects }
func (s *Store) Documents() *DocumentStore { return s.documents }

// ProjectStore implements repository.ProjectRepository on a JSON file.
type ProjectStore struct {
	col *collection
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

	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	data[p.ID] = raw
	if err := s.col.write(data); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return nil, err
	}
	raw, ok := data[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	var p domain.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", projectID, err)
	}
	normalize(&p)
	return &p, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]domain.Project, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(data))
	for id, raw := range data {
		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", id, err)
		}
		normalize(&p)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return err
	}
	if _, ok := data[project.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	raw, err := json.Marshal(project)
	if err != nil {
		return err
	}
	data[project.ID] = raw
	return s.col.write(data)
}

// normalize keeps the slice fields non-nil after a round trip through disk.
func normalize(p *domain.Project) {
	if p.DocumentIDs == nil {
		p.DocumentIDs = []string{}
	}
	if p.Versions == nil {
		p.Versions = []domain.Version{}
	}
	for i := range p.Versions {
		if p.Versions[i].GapAnalysis.MissingInformation == nil {
			p.Versions[i].GapAnalysis.MissingInformation = []string{}
		}
		if p.Versions[i].GapAnalysis.ClarifyingQuestions == nil {
			p.Versions[i].GapAnalysis.ClarifyingQuestions = []string{}
		}
		if p.Versions[i].PriorityMatrix == nil {
			p.Versions[i].PriorityMatrix = []domain.PriorityEntry{}
		}
	}
}

// DocumentStore implements repository.DocumentRepository on a JSON file.
type DocumentStore struct {
	col *collection
}

func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}

	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	data[doc.ID] = raw
	return s.col.write(data)
}

func (s *DocumentStore) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return nil, err
	}
	raw, ok := data[documentID]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", documentID, err)
	}
	return &doc, nil
}

func (s *DocumentStore) BulkGet(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()
	data, err := s.col.read()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Document, 0, len(documentIDs))
	for _, id := range documentIDs {
		raw, ok := data[id]
		if !ok {
			return nil, fmt.Errorf("document %s: %w", id, domain.ErrDocumentNotFound)
		}
		var doc domain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
		out = append(out, doc)
	}
	return out, nil
}
