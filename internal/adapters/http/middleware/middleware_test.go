package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serve runs one request through a fresh engine with the given middleware
// and a trivial 200 handler.
func serve(t *testing.T, mw gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Use(mw)
	router.Any("/:path", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := serve(t, RequestID(), req)

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request ID must be a UUID")
}

func TestRequestID_KeepsClientSupplied(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set(RequestIDHeader, "client-id-1")

	rec := serve(t, RequestID(), req)

	assert.Equal(t, "client-id-1", rec.Header().Get(RequestIDHeader))
}

func TestLogging_EmitsOneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodPost, "/deposit", nil)
	serve(t, Logging(&LoggingConfig{Logger: logger}), req)

	out := buf.String()
	assert.Contains(t, out, "HTTP Request")
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"path":"/deposit"`)
	assert.Contains(t, out, `"status":200`)
}

func TestLogging_SkipsConfiguredPaths(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	serve(t, Logging(&LoggingConfig{Logger: logger, SkipPaths: []string{"/health"}}), req)

	assert.Empty(t, buf.String())
}

func TestRecovery_TurnsPanicInto500(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Recovery(&RecoveryConfig{Logger: logger, EnableStackTrace: false}))
	router.POST("/deposit", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/deposit", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, buf.String(), "Panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	mw := RateLimit(&RateLimitConfig{
		Limit:  2,
		Window: time.Minute,
		KeyFunc: func(*gin.Context) string {
			return "fixed"
		},
	})

	router := gin.New()
	router.Use(mw)
	router.POST("/deposit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/deposit", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/deposit", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/deposit", nil)
	req.Header.Set("Origin", "http://example.com")

	rec := serve(t, CORS(DefaultCORSConfig()), req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Origin", "http://evil.example.com")

	rec := serve(t, CORS(ProductionCORSConfig([]string{"http://app.example.com"})), req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
