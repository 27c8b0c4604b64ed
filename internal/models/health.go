package models

import "time"

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual dependency health
type ServiceInfo struct {
	Status         string    `json:"status" example:"healthy"`
	LastCheck      time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	ResponseTimeMs int64     `json:"response_time_ms" example:"3"`
	Error          string    `json:"error,omitempty"`
}

// Health status values
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// MetricsResponse represents metrics response
type MetricsResponse struct {
	Requests  RequestsMetrics        `json:"requests"`
	Lookups   LookupMetrics          `json:"lookups"`
	System    SystemMetrics          `json:"system"`
	RateLimit map[string]interface{} `json:"rate_limit,omitempty"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// RequestsMetrics counts batch calls by outcome
type RequestsMetrics struct {
	Total        int64   `json:"total" example:"1500"`
	Success      int64   `json:"success" example:"1450"`
	Rejected     int64   `json:"rejected" example:"40"`
	Errors       int64   `json:"errors" example:"10"`
	SuccessRate  float64 `json:"success_rate" example:"96.67"`
	AvgLatencyMs float64 `json:"avg_latency_ms" example:"12.5"`
}

// LookupMetrics counts individual postcode outcomes across successful calls
type LookupMetrics struct {
	Matched int64 `json:"matched" example:"3200"`
	Failed  int64 `json:"failed" example:"410"`
}

// SystemMetrics represents runtime metrics
type SystemMetrics struct {
	MemoryUsageMB float64 `json:"memory_usage_mb" example:"12.5"`
	Goroutines    int     `json:"goroutines" example:"12"`
}
