package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is implemented by storage backends that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
	DB        string    `json:"db,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	storage     string
	db          Pinger
}

// NewHealthHandler creates the health endpoint handler. db may be nil
// for the file-backed storage backend.
func NewHealthHandler(serviceName, version, storage string, db Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		storage:     storage,
		db:          db,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := ""
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Storage:   h.storage,
		DB:        dbStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
