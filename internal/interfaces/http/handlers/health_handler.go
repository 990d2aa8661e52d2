// Package handlers contains the gin HTTP handlers of the risk service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/mfo-shield/internal/application/dto"
)

// HealthHandler provides the health and probe endpoints. The service keeps
// no external connections, so all probes answer from process state alone.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Reports the health of the risk service.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewHealthResponse())
}

// ReadinessCheck godoc
// @Summary      Readiness Check
// @Description  Reports whether the service is ready to accept traffic.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /ready [get]
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewReadyResponse())
}

// LivenessCheck godoc
// @Summary      Liveness Check
// @Description  Reports whether the service process is alive.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /live [get]
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewLiveResponse())
}
