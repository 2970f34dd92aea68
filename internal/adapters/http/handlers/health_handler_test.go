package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth_ReportsRoleAndFailoverFlag(t *testing.T) {
	failover := false
	h := NewHealthHandler("primary", "1.0.0", func() bool { return failover }, nil)
	router := newHealthRouter(h)

	rec := get(router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "primary", body.Role)
	assert.False(t, body.FailoverMode)
	assert.Equal(t, "1.0.0", body.Version)
	assert.NotEmpty(t, body.Uptime)

	failover = true
	rec = get(router, "/health")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.FailoverMode)
}

func TestReady_FollowsLedgerState(t *testing.T) {
	var ledgerErr error
	h := NewHealthHandler("backup", "1.0.0", nil, func() error { return ledgerErr })
	router := newHealthRouter(h)

	rec := get(router, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Ready)
	assert.Equal(t, "healthy", body.Checks["ledger"])

	ledgerErr = errors.New("ledger unavailable, restart required")
	rec = get(router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Ready)
	assert.Contains(t, body.Checks["ledger"], "unhealthy")
}

func TestLive_AlwaysOK(t *testing.T) {
	h := NewHealthHandler("primary", "dev", nil, nil)
	rec := get(newHealthRouter(h), "/live")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}
