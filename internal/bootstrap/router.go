package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/brd-studio/brd-backend/internal/api/http"
	"github.com/brd-studio/brd-backend/internal/api/http/middleware"
	"github.com/brd-studio/brd-backend/internal/export"
	"github.com/brd-studio/brd-backend/internal/generation"
	"github.com/brd-studio/brd-backend/internal/integrations/jira"
	projectshttp "github.com/brd-studio/brd-backend/internal/projects/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Stores      *Stores
	Generator   generation.Generator
	Jira        jira.Config
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
	}))
	r.Use(middleware.RequestID())

	var pinger httpapi.Pinger
	if dep.Stores.DB != nil {
		pinger = dep.Stores.DB
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Stores.Backend, pinger)
	healthHandler.RegisterRoutes(r)

	handler := projectshttp.New(
		dep.Stores.Projects,
		dep.Stores.Documents,
		generation.NewService(dep.Stores.Projects, dep.Stores.Documents, dep.Generator),
		export.NewService(dep.Stores.Projects),
		jira.NewClient(dep.Jira),
	)
	handler.Register(r.Group("/api/v1"))

	return r
}
