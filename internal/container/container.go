// Package container - dependency wiring for one replica process.
//
// The container is the composition root: every component is constructed in
// one place, in dependency order, and torn down in reverse. A primary gets
// the full stack (engine, gRPC service, failover monitor, replica client,
// replicated writer, HTTP API); a backup only serves its gRPC surface.
package container

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	natsadapter "github.com/Haleralex/ftwallet/internal/adapters/events"
	rpcserver "github.com/Haleralex/ftwallet/internal/adapters/grpc"
	httpadapter "github.com/Haleralex/ftwallet/internal/adapters/http"
	"github.com/Haleralex/ftwallet/internal/config"
	"github.com/Haleralex/ftwallet/internal/domain/events"
	"github.com/Haleralex/ftwallet/internal/ledger"
	"github.com/Haleralex/ftwallet/internal/pkg/logger"
	"github.com/Haleralex/ftwallet/internal/replication"
)

// ============================================
// Container
// ============================================

// Container owns the lifecycle of all replica components.
type Container struct {
	config *config.Config
	logger *slog.Logger

	// Ledger
	store  ledger.Store
	engine *ledger.Engine

	// Replication
	monitor       *replication.Monitor
	replicaClient replication.Client
	writer        *replication.Writer

	// Events
	publisher events.Publisher

	// Servers
	grpcServer *rpcserver.Server
	httpServer *httpadapter.Server
}

// New creates an uninitialized container for the given configuration.
func New(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// ============================================
// Initialization
// ============================================

// Initialize constructs all components in dependency order.
func (c *Container) Initialize(ctx context.Context) error {
	if c.logger == nil {
		c.logger = c.initLogger()
	}
	c.logger.Info("initializing replica",
		slog.String("role", c.config.Replica.Role),
		slog.String("grpc_addr", c.config.Replica.GRPCAddr),
		slog.String("peer_target", c.config.Replica.PeerTarget))

	if err := c.initLedger(); err != nil {
		return fmt.Errorf("initialize ledger: %w", err)
	}

	c.initGRPCServer()
	c.initMonitor()

	if c.config.Replica.IsPrimary() {
		if err := c.initPrimary(ctx); err != nil {
			return err
		}
	}

	c.logger.Info("replica initialized")
	return nil
}

// initLogger builds the structured logger and installs it as the process
// default.
func (c *Container) initLogger() *slog.Logger {
	log := logger.New(&logger.Config{
		Level:     c.config.Log.Level,
		Format:    c.config.Log.Format,
		Output:    os.Stdout,
		AddSource: c.config.App.Debug,
	})
	log = log.With(slog.String("role", c.config.Replica.Role))
	slog.SetDefault(log)
	return log
}

// initLedger opens the per-role files, loads them, and rolls back any
// transactions left PENDING by a crash.
func (c *Container) initLedger() error {
	if c.store == nil {
		c.store = ledger.NewFileStore(c.config.Ledger.DataDir, c.config.LedgerPrefix())
	}

	engine, err := ledger.NewEngine(c.store, c.logger)
	if err != nil {
		return err
	}

	recovered, err := engine.RecoverPending()
	if err != nil {
		return fmt.Errorf("crash recovery: %w", err)
	}
	if recovered > 0 {
		c.logger.Warn("crash recovery rolled back in-flight transactions",
			slog.Int("count", recovered))
	}

	c.engine = engine
	return nil
}

// initGRPCServer exposes the local engine to the peer replica.
func (c *Container) initGRPCServer() {
	service := rpcserver.NewReplicaService(c.engine, c.config.Replica.Role, c.logger)
	c.grpcServer = rpcserver.NewServer(c.config.Replica.GRPCAddr, service, c.logger)
}

// initMonitor creates the peer health probe loop. Both roles run it; only the
// primary's writer consumes the failover flag.
func (c *Container) initMonitor() {
	c.monitor = replication.NewMonitor(
		c.config.Replica.PeerTarget,
		c.config.Replica.HealthInterval,
		c.config.Replica.HealthTimeout,
		c.logger,
	)
}

// initPrimary builds the components only the primary runs: the replica
// client, the event publisher, the replicated writer, and the HTTP API.
func (c *Container) initPrimary(ctx context.Context) error {
	if c.replicaClient == nil {
		client, err := replication.Dial(
			c.config.Replica.PeerTarget,
			c.config.Replica.RPCTimeout,
			c.logger,
		)
		if err != nil {
			return fmt.Errorf("initialize replica client: %w", err)
		}
		c.replicaClient = client
	}

	if c.publisher == nil {
		if err := c.initPublisher(ctx); err != nil {
			return err
		}
	}

	c.writer = replication.NewWriter(c.engine, c.replicaClient, c.monitor, c.publisher, c.logger)
	c.initHTTPServer()
	return nil
}

// initPublisher connects to NATS when eventing is enabled; otherwise events
// are discarded.
func (c *Container) initPublisher(_ context.Context) error {
	if !c.config.Events.Enabled {
		c.publisher = events.NoopPublisher{}
		return nil
	}

	pub, err := natsadapter.NewNATSPublisher(c.config.Events.URL, c.logger)
	if err != nil {
		return fmt.Errorf("initialize event publisher: %w", err)
	}
	c.publisher = pub
	c.logger.Info("NATS event publisher connected", slog.String("url", c.config.Events.URL))
	return nil
}

// initHTTPServer assembles the client-facing API.
func (c *Container) initHTTPServer() {
	router := httpadapter.NewRouterBuilder(&httpadapter.RouterConfig{
		Logger:         c.logger,
		Role:           c.config.Replica.Role,
		Version:        c.config.App.Version,
		Environment:    c.config.App.Environment,
		AllowedOrigins: c.config.CORS.AllowedOrigins,
	}).
		WithWriter(c.writer).
		WithFailoverFlag(c.monitor.FailoverMode).
		WithReadiness(c.engine.Ready).
		Build()

	c.httpServer = httpadapter.NewServer(&httpadapter.ServerConfig{
		Host:            c.config.Server.Host,
		Port:            fmt.Sprintf("%d", c.config.Server.Port),
		ReadTimeout:     c.config.Server.ReadTimeout,
		WriteTimeout:    c.config.Server.WriteTimeout,
		IdleTimeout:     c.config.Server.IdleTimeout,
		ShutdownTimeout: c.config.Server.ShutdownTimeout,
		Logger:          c.logger,
	}, router)
}

// ============================================
// Getters
// ============================================

// Config returns the configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the process logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Engine returns the local ledger engine.
func (c *Container) Engine() *ledger.Engine {
	return c.engine
}

// Writer returns the replicated writer; nil on a backup.
func (c *Container) Writer() *replication.Writer {
	return c.writer
}

// Monitor returns the failover monitor.
func (c *Container) Monitor() *replication.Monitor {
	return c.monitor
}

// HTTPServer returns the client API server; nil on a backup.
func (c *Container) HTTPServer() *httpadapter.Server {
	return c.httpServer
}

// GRPCServer returns the replica-facing RPC server.
func (c *Container) GRPCServer() *rpcserver.Server {
	return c.grpcServer
}

// ============================================
// Run
// ============================================

// Run starts every server plus the monitor loop and blocks until ctx is
// cancelled or a server fails, then shuts everything down.
func (c *Container) Run(ctx context.Context) error {
	c.logger.Info("starting replica",
		slog.String("version", c.config.App.Version),
		slog.String("environment", c.config.App.Environment))

	errChan := make(chan error, 2)

	go func() {
		if err := c.grpcServer.Start(); err != nil {
			errChan <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	go c.monitor.Run(ctx)

	if c.httpServer != nil {
		go func() {
			if err := c.httpServer.Start(); err != nil {
				errChan <- fmt.Errorf("HTTP server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case runErr = <-errChan:
		c.logger.Error("server failed", slog.String("error", runErr.Error()))
	case <-ctx.Done():
		c.logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.config.Server.ShutdownTimeout)
	defer cancel()

	if err := c.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// ============================================
// Shutdown
// ============================================

// Shutdown tears components down in reverse initialization order.
func (c *Container) Shutdown(ctx context.Context) error {
	c.logger.Info("shutting down replica...")

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		}
	}

	if c.grpcServer != nil {
		c.grpcServer.Stop()
	}

	if c.replicaClient != nil {
		if err := c.replicaClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("replica client close: %w", err))
		}
	}

	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event publisher close: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	c.logger.Info("replica shutdown complete")
	return nil
}

// ============================================
// Builder
// ============================================

// Builder assembles a container with selected components replaced. Tests use
// it to inject in-memory stores and stub peers.
type Builder struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     ledger.Store
	client    replication.Client
	publisher events.Publisher
}

// NewBuilder creates a builder for the given configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// WithLogger sets a custom logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithStore sets a custom ledger store.
func (b *Builder) WithStore(store ledger.Store) *Builder {
	b.store = store
	return b
}

// WithReplicaClient sets a custom peer client.
func (b *Builder) WithReplicaClient(client replication.Client) *Builder {
	b.client = client
	return b
}

// WithPublisher sets a custom event publisher.
func (b *Builder) WithPublisher(publisher events.Publisher) *Builder {
	b.publisher = publisher
	return b
}

// Build initializes the container with the overrides applied.
func (b *Builder) Build(ctx context.Context) (*Container, error) {
	c := New(b.cfg)
	c.logger = b.logger
	c.store = b.store
	c.replicaClient = b.client
	c.publisher = b.publisher

	if err := c.Initialize(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// ============================================
// Health
// ============================================

// HealthStatus is the container-level health summary.
type HealthStatus struct {
	Status string            `json:"status"`
	Role   string            `json:"role"`
	Checks map[string]string `json:"checks"`
}

// Health reports component health: ledger writability and peer reachability.
func (c *Container) Health(ctx context.Context) *HealthStatus {
	_ = ctx

	status := &HealthStatus{
		Status: "healthy",
		Role:   c.config.Replica.Role,
		Checks: make(map[string]string),
	}

	if err := c.engine.Ready(); err != nil {
		status.Status = "unhealthy"
		status.Checks["ledger"] = "error: " + err.Error()
	} else {
		status.Checks["ledger"] = "ok"
	}

	if c.monitor.PeerAlive() {
		status.Checks["peer"] = "ok"
	} else {
		// A dead peer degrades but does not fail the replica; failover mode
		// keeps writes flowing.
		status.Checks["peer"] = "unreachable"
	}

	return status
}
