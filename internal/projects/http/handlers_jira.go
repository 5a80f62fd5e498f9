package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brd-studio/brd-backend/internal/integrations/jira"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

// pushToJira exports the latest version's priority matrix as Jira
// issues. Without credentials it answers with a stub instead of
// failing, so the UI can keep the button visible.
func (h *Handler) pushToJira(c *gin.Context) {
	if !h.jira.Configured() {
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": "stub", "message": "Jira integration not configured."})
		return
	}

	var req jiraPushReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project_id is required"})
		return
	}

	project, err := h.projects.Get(c.Request.Context(), req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	version, ok := project.LatestVersion()
	if !ok {
		respondError(c, domain.ErrNoVersions)
		return
	}

	requirements := make([]jira.Requirement, 0, len(version.PriorityMatrix))
	for _, entry := range version.PriorityMatrix {
		requirements = append(requirements, jira.Requirement{
			Summary:  entry.Requirement,
			Priority: entry.Priority,
		})
	}

	keys, err := h.jira.PushRequirements(c.Request.Context(), project.Name, requirements)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error(), "created": keys})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "created", "issues": keys})
}
