package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salesboard/backend/internal/infrastructure/persistence"
	"github.com/salesboard/backend/internal/interfaces/http/dto"
)

// SystemHandler serves health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db, started: time.Now()}
}

// HealthStatus is the payload of the health endpoint
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Health reports liveness plus database connectivity. Returns 503 when the
// database is unreachable.
func (h *SystemHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.started).Round(time.Second).String(),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status.Status = "degraded"
			status.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(status))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(status))
}
