// Package handlers - health endpoints.
//
// /health and /live answer liveness; /ready additionally checks that the
// local ledger can still accept writes.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the state of one replica process.
type HealthHandler struct {
	role      string
	version   string
	failover  func() bool  // current failover flag, nil on the backup-probing side
	ready     func() error // ledger writability check
	startTime time.Time
}

// NewHealthHandler creates the handler. failover and ready may be nil.
func NewHealthHandler(role, version string, failover func() bool, ready func() error) *HealthHandler {
	return &HealthHandler{
		role:      role,
		version:   version,
		failover:  failover,
		ready:     ready,
		startTime: time.Now(),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string    `json:"status"`
	Role         string    `json:"role"`
	FailoverMode bool      `json:"failover_mode"`
	Version      string    `json:"version"`
	Uptime       string    `json:"uptime"`
	Timestamp    time.Time `json:"timestamp"`
}

// ReadinessResponse is the body of GET /ready.
type ReadinessResponse struct {
	Ready     bool              `json:"ready"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	failoverMode := false
	if h.failover != nil {
		failoverMode = h.failover()
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		Role:         h.role,
		FailoverMode: failoverMode,
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:    time.Now().UTC(),
	})
}

// Ready handles GET /ready. Returns 503 once the ledger refuses writes.
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := make(map[string]string)
	allReady := true

	if h.ready != nil {
		if err := h.ready(); err != nil {
			checks["ledger"] = "unhealthy: " + err.Error()
			allReady = false
		} else {
			checks["ledger"] = "healthy"
		}
	} else {
		checks["ledger"] = "not configured"
	}

	statusCode := http.StatusOK
	if !allReady {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, ReadinessResponse{
		Ready:     allReady,
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	})
}

// Live handles GET /live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// RegisterRoutes registers the health routes.
//
// Routes:
// - GET /health - role, failover flag, uptime
// - GET /ready  - readiness probe (ledger writable)
// - GET /live   - liveness probe
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
}
