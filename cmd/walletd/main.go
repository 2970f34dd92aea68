// walletd runs one wallet replica. Role and addresses come from the
// environment or a config file; a typical pair is
//
//	ROLE=primary  ./walletd   (gRPC :50051, HTTP API :8000)
//	ROLE=backup   ./walletd   (gRPC :50052, no HTTP API)
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Haleralex/ftwallet/internal/config"
	"github.com/Haleralex/ftwallet/internal/container"
	"github.com/Haleralex/ftwallet/internal/pkg/tracing"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "configs", "directory searched for config.yaml")
	flag.Parse()

	// A local .env is a convenience for development; missing is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath, "config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New(cfg)
	if err := c.Initialize(ctx); err != nil {
		log.Fatalf("initialize: %v", err)
	}
	logger := c.Logger()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.App.Name + "-" + cfg.Replica.Role,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, logger)
	if err != nil {
		logger.Error("tracing setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := c.Run(ctx); err != nil {
		logger.Error("replica exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("replica stopped")
}
