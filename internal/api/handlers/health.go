package handlers

import (
	"net/http"
	"time"

	"github.com/altechdata/postcode-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// HealthChecker reports dependency health keyed by dependency name
type HealthChecker interface {
	Health() map[string]interface{}
}

// HealthHandler handles health check requests
type HealthHandler struct {
	checker   HealthChecker
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker:   checker,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	servicesHealth := h.checker.Health()

	response := models.HealthResponse{
		Status:    models.StatusHealthy,
		Timestamp: time.Now(),
		Version:   Version,
		Services:  make(map[string]models.ServiceInfo, len(servicesHealth)),
		Uptime:    time.Since(h.startTime).String(),
	}

	for name, raw := range servicesHealth {
		healthMap, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		info := models.ServiceInfo{LastCheck: time.Now()}
		if status, ok := healthMap["status"].(string); ok {
			info.Status = status
		}
		if errMsg, ok := healthMap["error"].(string); ok {
			info.Error = errMsg
		}
		if ms, ok := healthMap["response_time_ms"].(int64); ok {
			info.ResponseTimeMs = ms
		}
		response.Services[name] = info

		switch info.Status {
		case models.StatusUnhealthy:
			response.Status = models.StatusUnhealthy
		case models.StatusDegraded:
			if response.Status == models.StatusHealthy {
				response.Status = models.StatusDegraded
			}
		}
	}

	httpStatus := http.StatusOK
	if response.Status == models.StatusUnhealthy {
		h.logger.WithField("services", response.Services).Warn("Health check failed")
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Check if the API can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	servicesHealth := h.checker.Health()

	ready := true
	issues := make([]string, 0)

	if dbHealth, ok := servicesHealth["database"].(map[string]interface{}); ok {
		if dbHealth["status"] == models.StatusUnhealthy {
			ready = false
			issues = append(issues, "database is unreachable")
		}
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  servicesHealth,
	}
	if len(issues) > 0 {
		response["issues"] = issues
	}

	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, response)
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Description Check if the API process is responding
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startTime).String(),
		"version":   Version,
	})
}
