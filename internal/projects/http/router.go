package http

import "github.com/gin-gonic/gin"

// Register attaches the project and integration routes to the group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)

	rg.POST("/projects", h.create)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:project_id", h.get)
	rg.POST("/projects/:project_id/generate", h.generate)
	rg.GET("/projects/:project_id/compare", h.compare)
	rg.POST("/projects/:project_id/export", h.exportBRD)

	rg.POST("/integrations/jira", h.pushToJira)
}
