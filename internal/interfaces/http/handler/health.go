package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/clientes/backend/internal/infrastructure/logger"
	"github.com/clientes/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// DatabaseChecker is the part of persistence.Database the readiness probe needs
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db        DatabaseChecker
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DatabaseChecker, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// LivenessResponse reports that the process is serving requests
// @name HandlerLivenessResponse
type LivenessResponse struct {
	Status    string `json:"status" example:"ok"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// ReadinessResponse reports whether the database answers
// @name HandlerReadinessResponse
type ReadinessResponse struct {
	Status   string                       `json:"status" example:"ready"`
	Database string                       `json:"database" example:"ok"`
	Time     string                       `json:"time" example:"2026-01-23T12:00:00Z"`
	Pool     *persistence.ConnectionStats `json:"pool,omitempty"`
}

// Health godoc
// @ID           health
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[LivenessResponse]
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, LivenessResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready godoc
// @ID           ready
// @Summary      Readiness probe
// @Description  Pings the database
// @Tags         health
// @Produce      json
// @Success      200 {object} APIResponse[ReadinessResponse]
// @Failure      503 {object} APIResponse[ReadinessResponse]
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, APIResponse[ReadinessResponse]{
			Success: false,
			Data:    ReadinessResponse{Status: "unavailable", Database: "error", Time: now},
		})
		return
	}

	resp := ReadinessResponse{Status: "ready", Database: "ok", Time: now}
	if stats, err := h.db.Stats(); err == nil {
		resp.Pool = &stats
	}
	h.Success(c, resp)
}
