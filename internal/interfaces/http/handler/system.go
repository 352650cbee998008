package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/plaudstore/backend/internal/infrastructure/persistence"
	"github.com/plaudstore/backend/internal/interfaces/http/dto"
)

// SystemHandler handles health reporting. db is nil when the datastore is
// unconfigured; the endpoint then reports degraded but stays at 200.
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		OK:        true,
		Status:    "ok",
		Datastore: "ok",
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	switch {
	case h.db == nil:
		resp.Status = "degraded"
		resp.Datastore = "unconfigured"
	default:
		if err := h.db.Ping(c.Request.Context()); err != nil {
			resp.Status = "degraded"
			resp.Datastore = "unreachable"
		}
	}

	c.JSON(http.StatusOK, resp)
}
