package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brd-studio/brd-backend/internal/export"
)

func (h *Handler) exportBRD(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.ExportFormat == "" {
		req.ExportFormat = export.FormatDocx
	}

	artifact, err := h.exporter.Export(c.Request.Context(), c.Param("project_id"), req.VersionID, req.ExportFormat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
