// Package replication implements the primary-side replication protocol:
// the gRPC stub to the peer replica, the periodic failover monitor, and the
// replicated writer that orchestrates the backup-first write sequence.
package replication

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	walletv1 "github.com/Haleralex/ftwallet/gen/wallet/v1"
	domainerrors "github.com/Haleralex/ftwallet/internal/domain/errors"
	"github.com/Haleralex/ftwallet/internal/ledger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is the capability set the replicated writer needs from the peer
// replica. It mirrors the ledger engine operations, keyed by the same
// client-supplied transaction ID.
type Client interface {
	Deposit(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error)
	Withdraw(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error)
	GetBalance(ctx context.Context, accountID string) (ledger.BalanceResult, error)
	Close() error
}

// GRPCClient reaches the peer's WalletReplica service over an insecure
// localhost channel. Every call carries a per-call deadline; a broken
// connection surfaces as repeated call failures that the failover monitor
// turns into mode changes. Reconnection is left to the gRPC channel itself.
type GRPCClient struct {
	conn    *grpc.ClientConn
	stub    walletv1.WalletReplicaClient
	timeout time.Duration
	logger  *slog.Logger
}

var _ Client = (*GRPCClient)(nil)

// Dial creates the replica client. The connection is established lazily by
// gRPC; a peer that is down at startup only fails the individual calls.
func Dial(target string, timeout time.Duration, logger *slog.Logger) (*GRPCClient, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial replica %s: %w", target, err)
	}
	logger.Info("replica client created", slog.String("target", target))
	return &GRPCClient{
		conn:    conn,
		stub:    walletv1.NewWalletReplicaClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Deposit forwards a deposit to the peer replica.
func (c *GRPCClient) Deposit(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.Deposit(ctx, &walletv1.DepositRequest{
		AccountId:     accountID,
		Amount:        amount,
		TransactionId: txnID,
	})
	if err != nil {
		c.logger.Error("replica deposit failed",
			slog.String("transaction_id", txnID),
			slog.String("error", err.Error()))
		return ledger.TxnResult{}, fmt.Errorf("%w: %v", domainerrors.ErrReplicaUnavailable, err)
	}
	return ledger.TxnResult{
		Success:    resp.GetSuccess(),
		Message:    resp.GetMessage(),
		NewBalance: resp.GetNewBalance(),
	}, nil
}

// Withdraw forwards a withdraw to the peer replica.
func (c *GRPCClient) Withdraw(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.Withdraw(ctx, &walletv1.WithdrawRequest{
		AccountId:     accountID,
		Amount:        amount,
		TransactionId: txnID,
	})
	if err != nil {
		c.logger.Error("replica withdraw failed",
			slog.String("transaction_id", txnID),
			slog.String("error", err.Error()))
		return ledger.TxnResult{}, fmt.Errorf("%w: %v", domainerrors.ErrReplicaUnavailable, err)
	}
	return ledger.TxnResult{
		Success:    resp.GetSuccess(),
		Message:    resp.GetMessage(),
		NewBalance: resp.GetNewBalance(),
	}, nil
}

// GetBalance queries the peer replica's balance for an account.
func (c *GRPCClient) GetBalance(ctx context.Context, accountID string) (ledger.BalanceResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.stub.GetBalance(ctx, &walletv1.GetBalanceRequest{AccountId: accountID})
	if err != nil {
		return ledger.BalanceResult{}, fmt.Errorf("%w: %v", domainerrors.ErrReplicaUnavailable, err)
	}
	return ledger.BalanceResult{
		Success: resp.GetSuccess(),
		Balance: resp.GetBalance(),
		Message: resp.GetMessage(),
	}, nil
}

// Close tears down the channel to the peer.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
