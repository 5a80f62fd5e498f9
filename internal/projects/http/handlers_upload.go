package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brd-studio/brd-backend/internal/ingest/parser"
	"github.com/brd-studio/brd-backend/internal/projects/domain"
)

func (h *Handler) upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "multipart form required"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "at least one file is required"})
		return
	}

	out := make([]documentMetadata, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable upload: " + fh.Filename})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable upload: " + fh.Filename})
			return
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		parsed := parser.Parse(fh.Filename, content)
		doc := &domain.Document{
			Filename:    fh.Filename,
			ContentType: contentType,
			Text:        parsed.Text,
			Metadata:    parsed.Metadata,
		}
		if err := h.documents.Save(c.Request.Context(), doc); err != nil {
			respondError(c, err)
			return
		}

		out = append(out, documentMetadata{
			ID:          doc.ID,
			Filename:    doc.Filename,
			ContentType: doc.ContentType,
			TextPreview: preview(doc.Text),
			Metadata:    doc.Metadata,
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": out})
}
