package handlers

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/altechdata/postcode-api/internal/api/middleware"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Metrics accumulates lookup call counters; safe for concurrent use
type Metrics struct {
	total      atomic.Int64
	success    atomic.Int64
	rejected   atomic.Int64
	errors     atomic.Int64
	matched    atomic.Int64
	failed     atomic.Int64
	latencySum atomic.Int64
}

// NewMetrics creates an empty metrics collector
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordSuccess counts a call that produced a result body
func (m *Metrics) RecordSuccess(d time.Duration, matched, failed int) {
	m.record(d)
	m.success.Add(1)
	m.matched.Add(int64(matched))
	m.failed.Add(int64(failed))
}

// RecordRejected counts a call refused with a client error
func (m *Metrics) RecordRejected(d time.Duration) {
	m.record(d)
	m.rejected.Add(1)
}

// RecordError counts a call that failed with a server error
func (m *Metrics) RecordError(d time.Duration) {
	m.record(d)
	m.errors.Add(1)
}

func (m *Metrics) record(d time.Duration) {
	m.total.Add(1)
	m.latencySum.Add(d.Microseconds())
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() models.MetricsResponse {
	total := m.total.Load()
	success := m.success.Load()

	var successRate, avgLatency float64
	if total > 0 {
		successRate = float64(success) / float64(total) * 100
		avgLatency = float64(m.latencySum.Load()) / float64(total) / 1000
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return models.MetricsResponse{
		Requests: models.RequestsMetrics{
			Total:        total,
			Success:      success,
			Rejected:     m.rejected.Load(),
			Errors:       m.errors.Load(),
			SuccessRate:  successRate,
			AvgLatencyMs: avgLatency,
		},
		Lookups: models.LookupMetrics{
			Matched: m.matched.Load(),
			Failed:  m.failed.Load(),
		},
		System: models.SystemMetrics{
			MemoryUsageMB: float64(mem.Alloc) / 1024 / 1024,
			Goroutines:    runtime.NumGoroutine(),
		},
		Timestamp: time.Now(),
	}
}

// RateLimitStats reports the state of the request rate limiter
type RateLimitStats interface {
	GetStats() map[string]interface{}
}

// MetricsHandler handles metrics requests
type MetricsHandler struct {
	metrics   *Metrics
	rateLimit RateLimitStats
	logger    *logrus.Logger
}

// NewMetricsHandler creates a new metrics handler; rateLimit may be nil
func NewMetricsHandler(metrics *Metrics, rateLimit RateLimitStats, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics:   metrics,
		rateLimit: rateLimit,
		logger:    logger,
	}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Lookup call counters and runtime statistics
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.MetricsResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.logger.WithField("request_id", c.GetString(middleware.RequestIDKey)).Debug("Getting application metrics")
	snapshot := h.metrics.Snapshot()
	if h.rateLimit != nil {
		snapshot.RateLimit = h.rateLimit.GetStats()
	}
	c.JSON(http.StatusOK, snapshot)
}
