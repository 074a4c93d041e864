package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is a dependency the service cannot serve without.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

func (f HealthCheckFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type ActuatorHandler struct {
	*BaseHandler
	name     string
	version  string
	checkers map[string]HealthChecker
}

func NewActuatorHandler(name, version string, checkers map[string]HealthChecker, logger *logger.Logger) *ActuatorHandler {
	return &ActuatorHandler{
		BaseHandler: NewBaseHandler(logger),
		name:        name,
		version:     version,
		checkers:    checkers,
	}
}

// Health godoc
// @Summary Liveness and dependency health
// @Tags actuator
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /actuator/health [get]
func (h *ActuatorHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	for name, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			h.logger.Error("Health check failed", err, zap.String("dependency", name))
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "DOWN"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "UP"})
}

// Info godoc
// @Summary Application name and version
// @Tags actuator
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router /actuator/info [get]
func (h *ActuatorHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.InfoResponse{Name: h.name, Version: h.version})
}
