package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	project, version, err := h.generator.Generate(c.Request.Context(), c.Param("project_id"), req.DocumentIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project, "version": version})
}
