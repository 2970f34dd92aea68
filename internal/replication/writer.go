package replication

import (
	"context"
	"log/slog"

	"github.com/Haleralex/ftwallet/internal/domain/events"
	"github.com/Haleralex/ftwallet/internal/ledger"
)

// Writer orchestrates the backup-first write protocol on the primary.
//
// For any mutating transaction that returns success to the client, the
// backup's ledger already reflects it: the local engine is only touched after
// the backup confirms. The only divergence window is "backup accepted,
// primary then failed" - the client sees failure, and a retry with the same
// transaction ID is a no-op on the backup and re-attempted on the primary.
type Writer struct {
	engine    *ledger.Engine
	replica   Client
	monitor   *Monitor
	publisher events.Publisher
	logger    *slog.Logger
}

// NewWriter wires the writer to its engine, peer client, and monitor.
// publisher may be nil; events are then discarded.
func NewWriter(engine *ledger.Engine, replica Client, monitor *Monitor, publisher events.Publisher, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Writer{
		engine:    engine,
		replica:   replica,
		monitor:   monitor,
		publisher: publisher,
		logger:    logger,
	}
}

// Deposit replicates the deposit to the backup, then applies it locally.
func (w *Writer) Deposit(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error) {
	if res, done, err := w.replicate(ctx, ledger.OpDeposit, accountID, amount, txnID); done {
		return res, err
	}

	res, err := w.engine.Deposit(accountID, amount, txnID)
	w.publishOutcome(ctx, ledger.OpDeposit, accountID, amount, txnID, res, err)
	return res, err
}

// Withdraw replicates the withdraw to the backup, then applies it locally.
func (w *Writer) Withdraw(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error) {
	if res, done, err := w.replicate(ctx, ledger.OpWithdraw, accountID, amount, txnID); done {
		return res, err
	}

	res, err := w.engine.Withdraw(accountID, amount, txnID)
	w.publishOutcome(ctx, ledger.OpWithdraw, accountID, amount, txnID, res, err)
	return res, err
}

// GetBalance serves reads directly from the primary's engine; no backup call.
func (w *Writer) GetBalance(ctx context.Context, accountID string) (ledger.BalanceResult, error) {
	_ = ctx
	return w.engine.GetBalance(accountID)
}

// FailoverMode exposes the monitor flag for health reporting.
func (w *Writer) FailoverMode() bool {
	return w.monitor.FailoverMode()
}

// replicate runs the backup-first step. done=true means the call is terminal:
// the backup rejected or was unreachable, and the primary MUST NOT be
// mutated. In failover mode the step is skipped entirely.
func (w *Writer) replicate(ctx context.Context, op ledger.Operation, accountID string, amount float64, txnID string) (ledger.TxnResult, bool, error) {
	if w.monitor.FailoverMode() {
		w.logger.Warn("failover mode active, writing primary only",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(op)))
		return ledger.TxnResult{}, false, nil
	}

	var (
		backupRes ledger.TxnResult
		err       error
	)
	switch op {
	case ledger.OpWithdraw:
		backupRes, err = w.replica.Withdraw(ctx, accountID, amount, txnID)
	default:
		backupRes, err = w.replica.Deposit(ctx, accountID, amount, txnID)
	}

	if err != nil {
		replicationFailures.WithLabelValues(string(op), "transport").Inc()
		w.logger.Error("backup replication failed",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(op)),
			slog.String("error", err.Error()))
		return ledger.TxnResult{Message: "Backup error: " + err.Error()}, true, err
	}

	if !backupRes.Success {
		replicationFailures.WithLabelValues(string(op), "rejected").Inc()
		w.logger.Warn("backup rejected transaction",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(op)),
			slog.String("backup_message", backupRes.Message))
		// The backup's reported balance is deliberately discarded here.
		return ledger.TxnResult{Success: false, Message: "Backup error: " + backupRes.Message, NewBalance: 0}, true, nil
	}

	return ledger.TxnResult{}, false, nil
}

// publishOutcome emits a transaction event after the primary has spoken.
// Fire-and-forget: a publish failure is logged and swallowed.
func (w *Writer) publishOutcome(ctx context.Context, op ledger.Operation, accountID string, amount float64, txnID string, res ledger.TxnResult, err error) {
	if err != nil {
		return
	}

	eventType := events.TypeTransactionCommitted
	if !res.Success {
		eventType = events.TypeTransactionRejected
	}
	event := events.NewTransactionEvent(eventType, txnID, accountID, string(op), amount, res.NewBalance, w.monitor.FailoverMode())

	if pubErr := w.publisher.Publish(ctx, event); pubErr != nil {
		w.logger.Warn("transaction event publish failed",
			slog.String("transaction_id", txnID),
			slog.String("error", pubErr.Error()))
	}
}
