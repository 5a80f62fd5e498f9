// Package http exposes the project, upload, generation, export and
// integration endpoints on Gin.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brd-studio/brd-backend/internal/export"
	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/integrations/jira"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/projects/repository"
)

// Handler bundles the collaborators behind the project endpoints.
type Handler struct {
	projects  repository.ProjectRepository
	documents repository.DocumentRepository
	generator *generation.Service
	exporter  *export.Service
	jira      *jira.Client
}

// New creates the handler.
func New(
	projects repository.ProjectRepository,
	documents repository.DocumentRepository,
	generator *generation.Service,
	exporter *export.Service,
	jiraClient *jira.Client,
) *Handler {
	return &Handler{
		projects:  projects,
		documents: documents,
		generator: generator,
		exporter:  exporter,
		jira:      jiraClient,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name is required"})
		return
	}

	p, err := h.projects.Create(c.Request.Context(), domain.Intake{
		Name:            strings.TrimSpace(req.Name),
		Industry:        req.Industry,
		BusinessProblem: req.BusinessProblem,
		Goals:           req.Goals,
		Stakeholders:    req.Stakeholders,
		Timelines:       req.Timelines,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// respondError maps domain errors onto HTTP statuses; anything
// unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrDocumentNotFound),
		errors.Is(err, domain.ErrVersionNotFound),
		errors.Is(err, domain.ErrNoVersions):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrGeneration):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrRender):
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}
