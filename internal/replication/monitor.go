package replication

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Monitor runs the periodic peer health probe and publishes the failover
// flag the replicated writer reads on every mutating call.
//
// State machine: HEALTHY -> FAILOVER on the first failed probe (critical log
// line), FAILOVER -> HEALTHY on the first successful probe. Initial state is
// HEALTHY. The flags are plain atomics: one writer (the probe loop), many
// readers, no further ordering needed.
type Monitor struct {
	target   string
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	peerAlive    atomic.Bool
	failoverMode atomic.Bool

	// probe is replaceable in tests. The default opens a fresh channel to the
	// peer and issues a standard gRPC health check under the probe deadline.
	probe func(ctx context.Context) error
}

// NewMonitor creates a monitor probing target every interval with the given
// per-probe deadline.
func NewMonitor(target string, interval, timeout time.Duration, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Monitor{
		target:   target,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
	m.peerAlive.Store(true)
	m.probe = m.healthCheck
	return m
}

// FailoverMode reports whether mutations should skip the backup call.
func (m *Monitor) FailoverMode() bool {
	return m.failoverMode.Load()
}

// PeerAlive reports the result of the most recent probe.
func (m *Monitor) PeerAlive() bool {
	return m.peerAlive.Load()
}

// Run drives the probe loop until ctx is cancelled. The first probe fires
// immediately so a dead peer is noticed at startup, not one interval later.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.tick(ctx)
		select {
		case <-ctx.Done():
			m.logger.Info("failover monitor stopped", slog.String("target", m.target))
			return
		case <-ticker.C:
		}
	}
}

// tick runs one probe and applies the state transition.
func (m *Monitor) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.probe(ctx); err != nil {
		healthProbeTotal.WithLabelValues("failure").Inc()
		m.peerAlive.Store(false)
		if !m.failoverMode.Load() {
			m.logger.Error("PEER REPLICA DOWN - ACTIVATING FAILOVER MODE",
				slog.String("target", m.target),
				slog.String("error", err.Error()))
			m.failoverMode.Store(true)
			failoverModeGauge.Set(1)
		} else {
			m.logger.Warn("peer replica still unreachable",
				slog.String("target", m.target),
				slog.String("error", err.Error()))
		}
		return
	}

	healthProbeTotal.WithLabelValues("success").Inc()
	m.peerAlive.Store(true)
	if m.failoverMode.Load() {
		m.logger.Info("peer replica recovered, leaving failover mode",
			slog.String("target", m.target))
		m.failoverMode.Store(false)
		failoverModeGauge.Set(0)
	} else {
		m.logger.Debug("peer replica healthy", slog.String("target", m.target))
	}
}

// healthCheck opens a fresh channel to the peer and issues a standard
// grpc.health.v1 check. The channel is per-probe on purpose: probing must not
// share fate with the replication client's long-lived connection.
func (m *Monitor) healthCheck(ctx context.Context) error {
	conn, err := grpc.NewClient(m.target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	return err
}
