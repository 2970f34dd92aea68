// Package grpc - the replica-facing RPC surface.
//
// Both replicas expose the WalletReplica service over an insecure localhost
// channel: the backup so the primary can replicate writes into it, the
// primary so its peer's monitor can probe it and a failover client could read
// it. Each request is forwarded unchanged to the local ledger engine, so the
// service inherits the engine's idempotency.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	walletv1 "github.com/Haleralex/ftwallet/gen/wallet/v1"
	"github.com/Haleralex/ftwallet/internal/ledger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ReplicaService implements walletv1.WalletReplicaServer over a local engine.
type ReplicaService struct {
	walletv1.UnimplementedWalletReplicaServer

	engine *ledger.Engine
	role   string
	logger *slog.Logger
}

// NewReplicaService creates the servicer. role is only used for log lines
// ("primary" or "backup").
func NewReplicaService(engine *ledger.Engine, role string, logger *slog.Logger) *ReplicaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReplicaService{engine: engine, role: role, logger: logger}
}

// Deposit applies a deposit on the local engine and returns the triple
// unchanged. Engine faults are reported inside the response, not as RPC
// errors: the triple is the protocol.
func (s *ReplicaService) Deposit(ctx context.Context, req *walletv1.DepositRequest) (*walletv1.TransactionResponse, error) {
	res, err := s.engine.Deposit(req.GetAccountId(), req.GetAmount(), req.GetTransactionId())
	if err != nil {
		s.logger.Error("deposit failed",
			slog.String("role", s.role),
			slog.String("transaction_id", req.GetTransactionId()),
			slog.String("error", err.Error()))
	}
	s.logger.Info("replica deposit",
		slog.String("role", s.role),
		slog.String("transaction_id", req.GetTransactionId()),
		slog.String("message", res.Message))
	return &walletv1.TransactionResponse{
		Success:       res.Success,
		Message:       res.Message,
		NewBalance:    res.NewBalance,
		TransactionId: req.GetTransactionId(),
	}, nil
}

// Withdraw applies a withdraw on the local engine.
func (s *ReplicaService) Withdraw(ctx context.Context, req *walletv1.WithdrawRequest) (*walletv1.TransactionResponse, error) {
	res, err := s.engine.Withdraw(req.GetAccountId(), req.GetAmount(), req.GetTransactionId())
	if err != nil {
		s.logger.Error("withdraw failed",
			slog.String("role", s.role),
			slog.String("transaction_id", req.GetTransactionId()),
			slog.String("error", err.Error()))
	}
	s.logger.Info("replica withdraw",
		slog.String("role", s.role),
		slog.String("transaction_id", req.GetTransactionId()),
		slog.String("message", res.Message))
	return &walletv1.TransactionResponse{
		Success:       res.Success,
		Message:       res.Message,
		NewBalance:    res.NewBalance,
		TransactionId: req.GetTransactionId(),
	}, nil
}

// GetBalance reads the local balance.
func (s *ReplicaService) GetBalance(ctx context.Context, req *walletv1.GetBalanceRequest) (*walletv1.GetBalanceResponse, error) {
	res, err := s.engine.GetBalance(req.GetAccountId())
	if err != nil {
		s.logger.Error("balance query failed",
			slog.String("role", s.role),
			slog.String("account_id", req.GetAccountId()),
			slog.String("error", err.Error()))
	}
	return &walletv1.GetBalanceResponse{
		Success: res.Success,
		Balance: res.Balance,
		Message: res.Message,
	}, nil
}

// Server owns the listener and the grpc.Server lifecycle for one replica.
type Server struct {
	addr   string
	logger *slog.Logger
	grpc   *grpc.Server
	health *health.Server
}

// NewServer builds the gRPC server with the replica service and the standard
// health service registered (the peer's failover monitor probes the latter).
func NewServer(addr string, service *ReplicaService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	walletv1.RegisterWalletReplicaServer(srv, service)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	return &Server{
		addr:   addr,
		logger: logger,
		grpc:   srv,
		health: healthSrv,
	}
}

// Start listens and serves. Blocks until Stop is called or the listener
// fails.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.logger.Info("replica gRPC server listening", slog.String("address", s.addr))
	return s.grpc.Serve(lis)
}

// Stop drains in-flight RPCs and shuts the server down.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.logger.Info("replica gRPC server stopped", slog.String("address", s.addr))
}
