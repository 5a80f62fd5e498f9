package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/storage/jsonstore"
)

// stubGenerator records its inputs and returns a canned result.
type stubGenerator struct {
	references []string
	result     *Result
	err        error
	calls      int
}

func (g *stubGenerator) Generate(ctx context.Context, intake domain.Intake, references []string) (*Result, error) {
	g.calls++
	g.references = references
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func newTestService(t *testing.T, gen Generator) (*Service, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)
	return NewService(store.Projects(), store.Documents(), gen), store
}

func createProject(t *testing.T, store *jsonstore.Store) *domain.Project {
	t.Helper()
	p, err := store.Projects().Create(context.Background(), domain.Intake{
		Name:            "Policy Portal",
		Industry:        "Insurance",
		BusinessProblem: "manual intake",
		Goals:           "automation",
		Stakeholders:    "underwriters",
		Timelines:       "Q3",
	})
	require.NoError(t, err)
	return p
}

func TestGenerateAppendsVersion(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft\n- requirement one"}}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)
	ctx := context.Background()

	updated, version, err := svc.Generate(ctx, p.ID, nil)
	require.NoError(t, err)
	require.Len(t, updated.Versions, 1)
	assert.Equal(t, version.ID, updated.Versions[0].ID)
	assert.Equal(t, "# Draft\n- requirement one", version.BRDMarkdown)
	assert.Equal(t, version.CreatedAt, updated.UpdatedAt)

	// derived blocks are always present
	assert.NotNil(t, version.GapAnalysis.MissingInformation)
	assert.NotNil(t, version.GapAnalysis.ClarifyingQuestions)
	assert.NotEmpty(t, version.MermaidDiagram)
	assert.NotEmpty(t, version.StakeholderSummaries.Executives)
	require.Len(t, version.PriorityMatrix, 1)
}

func TestGenerateNewestVersionFirst(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft"}}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)
	ctx := context.Background()

	_, first, err := svc.Generate(ctx, p.ID, nil)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	updated, second, err := svc.Generate(ctx, p.ID, nil)
	require.NoError(t, err)

	require.Len(t, updated.Versions, 2)
	assert.Equal(t, second.ID, updated.Versions[0].ID)
	assert.Equal(t, first.ID, updated.Versions[1].ID)
	assert.True(t, updated.Versions[0].CreatedAt.After(updated.Versions[1].CreatedAt))
}

func TestGenerateUnknownProject(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft"}}
	svc, _ := newTestService(t, gen)

	_, _, err := svc.Generate(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Zero(t, gen.calls)
}

func TestGenerateUnknownDocumentFailsBeforeGenerator(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft"}}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)

	_, _, err := svc.Generate(context.Background(), p.ID, []string{"missing-doc"})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Zero(t, gen.calls)
}

func TestGenerateFeedsDocumentTextAndAttaches(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft"}}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)
	ctx := context.Background()

	doc := &domain.Document{Filename: "scope.txt", ContentType: "text/plain", Text: "scope notes"}
	require.NoError(t, store.Documents().Save(ctx, doc))

	updated, _, err := svc.Generate(ctx, p.ID, []string{doc.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"scope notes"}, gen.references)
	assert.Contains(t, updated.DocumentIDs, doc.ID)

	// generating again with the same id does not duplicate the attachment
	updated, _, err = svc.Generate(ctx, p.ID, []string{doc.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{doc.ID}, updated.DocumentIDs)
}

func TestGenerateEmptyDocumentSetUsesAttachedDocuments(t *testing.T) {
	gen := &stubGenerator{result: &Result{BRDMarkdown: "# Draft"}}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)
	ctx := context.Background()

	doc := &domain.Document{Filename: "a.txt", ContentType: "text/plain", Text: "attached text"}
	require.NoError(t, store.Documents().Save(ctx, doc))
	p.AddDocument(doc.ID)
	require.NoError(t, store.Projects().Update(ctx, p))

	_, _, err := svc.Generate(ctx, p.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"attached text"}, gen.references)
}

func TestGenerateSurfacesGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	svc, store := newTestService(t, gen)
	p := createProject(t, store)

	_, _, err := svc.Generate(context.Background(), p.ID, nil)
	assert.ErrorIs(t, err, domain.ErrGeneration)

	// a failed run must not leave a partial version behind
	fetched, getErr := store.Projects().Get(context.Background(), p.ID)
	require.NoError(t, getErr)
	assert.Empty(t, fetched.Versions)
}
