package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brd-studio/brd-backend/internal/diffview"
)

func (h *Handler) compare(c *gin.Context) {
	v1 := c.Query("v1")
	v2 := c.Query("v2")
	if v1 == "" || v2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "v1 and v2 query parameters are required"})
		return
	}

	project, err := h.projects.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	a, okA := project.Version(v1)
	b, okB := project.Version(v2)
	if !okA || !okB {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "one or both versions not found"})
		return
	}

	diff, err := diffview.Unified(a.BRDMarkdown, b.BRDMarkdown)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "diff": diff, "v1": v1, "v2": v2})
}
