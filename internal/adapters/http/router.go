// Package http is the external API of the primary replica.
//
// The router wires handlers and middleware into one gin engine; all
// dependencies arrive through the builder so tests can assemble partial
// routers.
package http

import (
	"log/slog"

	"github.com/Haleralex/ftwallet/internal/adapters/http/common"
	"github.com/Haleralex/ftwallet/internal/adapters/http/handlers"
	"github.com/Haleralex/ftwallet/internal/adapters/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ============================================
// Router Configuration
// ============================================

// RouterConfig carries everything the middleware chain needs.
type RouterConfig struct {
	Logger *slog.Logger
	// Role is "primary" or "backup"; reported by /health.
	Role string
	// Version of the build, reported by /health.
	Version string
	// Environment switches gin mode and CORS strictness.
	Environment string
	// AllowedOrigins for CORS in production.
	AllowedOrigins []string
}

// DefaultRouterConfig is the development configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Logger:         slog.Default(),
		Role:           "primary",
		Version:        "dev",
		Environment:    "development",
		AllowedOrigins: []string{"*"},
	}
}

// ============================================
// Router Builder
// ============================================

// RouterBuilder assembles the gin engine step by step.
type RouterBuilder struct {
	config   *RouterConfig
	writer   handlers.TransactionWriter
	failover func() bool
	ready    func() error
}

// NewRouterBuilder creates a builder.
func NewRouterBuilder(config *RouterConfig) *RouterBuilder {
	if config == nil {
		config = DefaultRouterConfig()
	}
	return &RouterBuilder{config: config}
}

// WithWriter sets the replicated writer behind /deposit, /withdraw, /balance.
func (b *RouterBuilder) WithWriter(writer handlers.TransactionWriter) *RouterBuilder {
	b.writer = writer
	return b
}

// WithFailoverFlag sets the failover flag reported by /health.
func (b *RouterBuilder) WithFailoverFlag(failover func() bool) *RouterBuilder {
	b.failover = failover
	return b
}

// WithReadiness sets the ledger writability check behind /ready.
func (b *RouterBuilder) WithReadiness(ready func() error) *RouterBuilder {
	b.ready = ready
	return b
}

// Build creates the configured gin engine.
func (b *RouterBuilder) Build() *gin.Engine {
	if b.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	handlers.SetupValidator()

	// ============================================
	// Global Middleware
	// ============================================

	router.Use(middleware.Recovery(&middleware.RecoveryConfig{
		Logger:           b.config.Logger,
		EnableStackTrace: b.config.Environment != "production",
	}))

	router.Use(middleware.RequestID())

	if b.config.Environment == "production" {
		router.Use(middleware.CORS(middleware.ProductionCORSConfig(b.config.AllowedOrigins)))
	} else {
		router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	}

	router.Use(otelgin.Middleware("ftwallet-api"))

	router.Use(middleware.Logging(&middleware.LoggingConfig{
		Logger:    b.config.Logger,
		SkipPaths: []string{"/health", "/live", "/ready", "/metrics"},
	}))

	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	router.Use(middleware.Metrics())

	// ============================================
	// Metrics and Health (no rate-limit tiers)
	// ============================================

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthHandler := handlers.NewHealthHandler(b.config.Role, b.config.Version, b.failover, b.ready)
	healthHandler.RegisterRoutes(router)

	// ============================================
	// Wallet API
	// ============================================

	if b.writer != nil {
		walletHandler := handlers.NewWalletHandler(b.writer)

		// Mutations get the stricter per-endpoint limiter
		mutations := router.Group("")
		mutations.Use(middleware.TransactionRateLimit())
		mutations.POST("/deposit", walletHandler.Deposit)
		mutations.POST("/withdraw", walletHandler.Withdraw)

		router.POST("/balance", walletHandler.Balance)
	}

	// ============================================
	// 404 Handler
	// ============================================

	router.NoRoute(func(c *gin.Context) {
		common.NotFound(c, "Endpoint not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})

	return router
}

// NewRouter creates a router in one call for the simple cases.
func NewRouter(config *RouterConfig) *gin.Engine {
	return NewRouterBuilder(config).Build()
}
