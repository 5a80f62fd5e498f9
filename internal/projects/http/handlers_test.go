package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brd-studio/brd-backend/internal/export"
	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/generation/llm"
	"github.com/brd-studio/brd-backend/internal/integrations/jira"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/storage/jsonstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonstore.Open(t.TempDir())
	require.NoError(t, err)

	handler := New(
		store.Projects(),
		store.Documents(),
		generation.NewService(store.Projects(), store.Documents(), llm.Mock{}),
		export.NewService(store.Projects()),
		jira.NewClient(jira.Config{}),
	)

	router := gin.New()
	handler.Register(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func createTestProject(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects", gin.H{
		"name":             "Policy Portal",
		"industry":         "Insurance",
		"business_problem": "manual policy intake",
		"goals":            "automated issuance",
		"stakeholders":     "underwriters",
		"timelines":        "Q3",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Project.ID)
	return resp.Project.ID
}

func TestCreateProjectValidation(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects", gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/projects", "not an object")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetProject(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Policy Portal", resp.Project.Name)
	assert.NotNil(t, resp.Project.DocumentIDs)
	assert.NotNil(t, resp.Project.Versions)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/projects/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListProjects(t *testing.T) {
	router := newTestRouter(t)
	createTestProject(t, router)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 1)
}

func TestGenerateWithoutDocuments(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{"document_ids": []string{}})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Project domain.Project `json:"project"`
		Version domain.Version `json:"version"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	// structurally complete even with zero references
	assert.NotEmpty(t, resp.Version.BRDMarkdown)
	assert.NotEmpty(t, resp.Version.MermaidDiagram)
	require.NotNil(t, resp.Version.GapAnalysis.MissingInformation)
	require.NotNil(t, resp.Version.GapAnalysis.ClarifyingQuestions)
	require.NotEmpty(t, resp.Version.PriorityMatrix)

	valid := map[string]bool{"Must": true, "Should": true, "Could": true, "Won't": true}
	for _, entry := range resp.Version.PriorityMatrix {
		assert.True(t, valid[entry.Priority], "unexpected label %q", entry.Priority)
	}

	require.Len(t, resp.Project.Versions, 1)
	assert.Equal(t, resp.Version.ID, resp.Project.Versions[0].ID)
}

func TestGenerateUnknownDocumentID(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{"document_ids": []string{"missing"}})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGenerateIsDeterministicOnMockPath(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	var bodies []string
	for i := 0; i < 2; i++ {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{})
		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Version domain.Version `json:"version"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		bodies = append(bodies, resp.Version.BRDMarkdown)
	}
	assert.Equal(t, bodies[0], bodies[1])
}

func uploadFiles(t *testing.T, router *gin.Engine, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestUploadMultipleFiles(t *testing.T) {
	router := newTestRouter(t)

	rr := uploadFiles(t, router, map[string]string{
		"scope.txt": "scope notes",
		"data.csv":  "a,b,c\n1,2,3",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Documents []struct {
			ID          string `json:"id"`
			Filename    string `json:"filename"`
			TextPreview string `json:"text_preview"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 2)

	names := map[string]bool{}
	ids := map[string]bool{}
	for _, d := range resp.Documents {
		names[d.Filename] = true
		require.False(t, ids[d.ID], "duplicate document id")
		ids[d.ID] = true
		assert.NotEmpty(t, d.TextPreview)
	}
	assert.True(t, names["scope.txt"])
	assert.True(t, names["data.csv"])
}

func TestUploadWithoutFiles(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadedDocumentFeedsGeneration(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := uploadFiles(t, router, map[string]string{"refs.txt": "the uploaded reference body"})
	require.Equal(t, http.StatusOK, rr.Code)

	var up struct {
		Documents []struct {
			ID string `json:"id"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &up))
	require.Len(t, up.Documents, 1)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate",
		gin.H{"document_ids": []string{up.Documents[0].ID}})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Project domain.Project `json:"project"`
		Version domain.Version `json:"version"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Version.BRDMarkdown, "the uploaded reference body")
	assert.Contains(t, resp.Project.DocumentIDs, up.Documents[0].ID)
}

func TestExportFlow(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{})
	require.Equal(t, http.StatusOK, rr.Code)

	for _, format := range []string{"docx", "pdf"} {
		rr = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/export", gin.H{"export_format": format})
		require.Equal(t, http.StatusOK, rr.Code, format)
		assert.NotEmpty(t, rr.Body.Bytes(), format)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), fmt.Sprintf("Policy_Portal_BRD.%s", format))
	}
}

func TestExportUnknownVersion(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/export",
		gin.H{"export_format": "pdf", "version_id": "missing"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExportWithoutVersions(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/export", gin.H{"export_format": "pdf"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestExportUnsupportedFormat(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/export", gin.H{"export_format": "odt"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompareVersions(t *testing.T) {
	router := newTestRouter(t)
	id := createTestProject(t, router)

	var versionIDs []string
	for i := 0; i < 2; i++ {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/projects/"+id+"/generate", gin.H{})
		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Version domain.Version `json:"version"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		versionIDs = append(versionIDs, resp.Version.ID)
	}

	rr := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s/compare?v1=%s&v2=%s", id, versionIDs[0], versionIDs[1]), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Diff string `json:"diff"`
		V1   string `json:"v1"`
		V2   string `json:"v2"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, versionIDs[0], resp.V1)
	// mock output is deterministic, so the two versions are identical
	assert.Empty(t, strings.TrimSpace(resp.Diff))

	rr = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/projects/%s/compare?v1=%s&v2=missing", id, versionIDs[0]), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+id+"/compare", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestJiraStubWhenUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/integrations/jira", gin.H{"project_id": "anything"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "stub", resp.Status)
}
