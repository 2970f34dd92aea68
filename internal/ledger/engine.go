package ledger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	domainerrors "github.com/Haleralex/ftwallet/internal/domain/errors"
)

// Engine is the per-process ledger: an in-memory account map plus the
// transaction log used as a write-ahead log and idempotency cache.
//
// Engine is not aware of replication; the primary and the backup each own one
// Engine instance against their own files.
//
// Concurrency: a single mutex covers the whole mutation sequence (duplicate
// check -> PENDING write -> balance change -> wallet save -> COMMITTED write),
// so a concurrent retry can never observe an in-flight PENDING record.
// Balance reads may run concurrently and only observe committed state.
type Engine struct {
	mu      sync.RWMutex
	store   Store
	wallets map[string]float64
	log     map[string]*Record
	logger  *slog.Logger

	// poisoned is set when a log-commit write fails. At that point the engine
	// can no longer record idempotency, so it refuses mutations until restart.
	poisoned bool
}

// NewEngine loads both files from the store and returns a ready engine.
// Call RecoverPending before serving traffic.
func NewEngine(store Store, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	wallets, err := store.LoadWallets()
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}
	log, err := store.LoadLog()
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}

	return &Engine{
		store:   store,
		wallets: wallets,
		log:     log,
		logger:  logger,
	}, nil
}

// Deposit credits amount to the account, keyed by the client-supplied
// transaction ID. A repeated call with the same ID returns the cached outcome
// without touching the balance.
//
// The returned error is nil for validation rejections (those are terminal
// results, not faults) and non-nil only for persistence failures.
func (e *Engine) Deposit(accountID string, amount float64, txnID string) (TxnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poisoned {
		return TxnResult{Message: "Deposit failed: " + domainerrors.ErrLedgerUnavailable.Error()},
			domainerrors.ErrLedgerUnavailable
	}

	if cached, ok := e.cachedResult(txnID); ok {
		e.logger.Info("duplicate transaction, returning cached result",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(OpDeposit)))
		return cached, nil
	}

	if amount <= 0 {
		return e.commitRejection(txnID, OpDeposit, accountID, amount, "Amount must be positive", 0)
	}

	if err := e.writePending(txnID, OpDeposit, accountID, amount); err != nil {
		return TxnResult{Message: "Deposit failed: " + err.Error()}, err
	}

	e.wallets[accountID] += amount
	newBalance := e.wallets[accountID]

	if err := e.store.SaveWallets(e.wallets); err != nil {
		e.wallets[accountID] -= amount
		return e.rollback(txnID, OpDeposit, err)
	}

	res := TxnResult{
		Success:    true,
		Message:    "Deposited " + formatAmount(amount),
		NewBalance: newBalance,
	}
	if err := e.commit(txnID, res); err != nil {
		return TxnResult{Message: "Deposit failed: " + err.Error()}, err
	}

	e.logger.Info("deposit committed",
		slog.String("transaction_id", txnID),
		slog.String("account_id", accountID),
		slog.Float64("amount", amount),
		slog.Float64("new_balance", newBalance))
	return res, nil
}

// Withdraw debits amount from the account. The insufficient-funds check runs
// before the PENDING record is written: it is a pure rejection that never
// touches the balance, recorded directly as COMMITTED so the rejection itself
// is idempotent.
func (e *Engine) Withdraw(accountID string, amount float64, txnID string) (TxnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poisoned {
		return TxnResult{Message: "Withdraw failed: " + domainerrors.ErrLedgerUnavailable.Error()},
			domainerrors.ErrLedgerUnavailable
	}

	if cached, ok := e.cachedResult(txnID); ok {
		e.logger.Info("duplicate transaction, returning cached result",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(OpWithdraw)))
		return cached, nil
	}

	if amount <= 0 {
		return e.commitRejection(txnID, OpWithdraw, accountID, amount, "Amount must be positive", 0)
	}

	if balance := e.wallets[accountID]; balance < amount {
		return e.commitRejection(txnID, OpWithdraw, accountID, amount, "Insufficient balance", balance)
	}

	if err := e.writePending(txnID, OpWithdraw, accountID, amount); err != nil {
		return TxnResult{Message: "Withdraw failed: " + err.Error()}, err
	}

	e.wallets[accountID] -= amount
	newBalance := e.wallets[accountID]

	if err := e.store.SaveWallets(e.wallets); err != nil {
		e.wallets[accountID] += amount
		return e.rollback(txnID, OpWithdraw, err)
	}

	res := TxnResult{
		Success:    true,
		Message:    "Withdrew " + formatAmount(amount),
		NewBalance: newBalance,
	}
	if err := e.commit(txnID, res); err != nil {
		return TxnResult{Message: "Withdraw failed: " + err.Error()}, err
	}

	e.logger.Info("withdraw committed",
		slog.String("transaction_id", txnID),
		slog.String("account_id", accountID),
		slog.Float64("amount", amount),
		slog.Float64("new_balance", newBalance))
	return res, nil
}

// GetBalance returns the committed balance. An unknown account is created at
// zero and persisted. Balance queries are not recorded in the transaction log.
func (e *Engine) GetBalance(accountID string) (BalanceResult, error) {
	e.mu.RLock()
	balance, ok := e.wallets[accountID]
	e.mu.RUnlock()
	if ok {
		return BalanceResult{Success: true, Balance: balance, Message: "Balance retrieved"}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Re-check under the write lock; another caller may have created it.
	if balance, ok := e.wallets[accountID]; ok {
		return BalanceResult{Success: true, Balance: balance, Message: "Balance retrieved"}, nil
	}

	e.wallets[accountID] = 0
	if err := e.store.SaveWallets(e.wallets); err != nil {
		delete(e.wallets, accountID)
		return BalanceResult{Message: "Balance query failed: " + err.Error()}, err
	}
	return BalanceResult{Success: true, Balance: 0, Message: "Balance retrieved"}, nil
}

// Ready reports whether the engine can accept mutations. It fails once a
// log-commit write has poisoned the engine.
func (e *Engine) Ready() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.poisoned {
		return domainerrors.ErrLedgerUnavailable
	}
	return nil
}

// RecoverPending rolls back every transaction found PENDING in the log and
// returns how many were resolved. A PENDING record means the wallet store
// write either never happened or cannot be verified as durable, so discarding
// is safe: the client's retry will find no COMMITTED record and re-execute.
//
// Run once at startup, before the engine serves traffic.
func (e *Engine) RecoverPending() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for txnID, rec := range e.log {
		if rec.Status != StatusPending {
			continue
		}
		rec.Status = StatusRolledBack
		rec.Success = false
		rec.Message = "Rolled back by crash recovery"
		rec.NewBalance = 0
		count++
		e.logger.Warn("rolled back in-flight transaction",
			slog.String("transaction_id", txnID),
			slog.String("operation", string(rec.Operation)))
	}

	if count > 0 {
		if err := e.store.SaveLog(e.log); err != nil {
			return 0, fmt.Errorf("persist recovered log: %w", err)
		}
	}
	return count, nil
}

// cachedResult returns the recorded outcome for a transaction ID already
// present in the log. Only COMMITTED records replay: a ROLLED_BACK record
// means the transaction never took effect, so the retry re-executes. PENDING
// records are unreachable here; recovery resolves them at startup and the
// engine mutex keeps in-flight ones invisible to concurrent callers.
func (e *Engine) cachedResult(txnID string) (TxnResult, bool) {
	rec, ok := e.log[txnID]
	if !ok || rec.Status == StatusRolledBack {
		return TxnResult{}, false
	}
	return TxnResult{Success: rec.Success, Message: rec.Message, NewBalance: rec.NewBalance}, true
}

// commitRejection records a validation failure as COMMITTED so the client's
// retry sees the same rejection.
func (e *Engine) commitRejection(txnID string, op Operation, accountID string, amount float64, message string, balance float64) (TxnResult, error) {
	e.log[txnID] = &Record{
		Status:     StatusCommitted,
		Operation:  op,
		AccountID:  accountID,
		Amount:     amount,
		Success:    false,
		Message:    message,
		NewBalance: balance,
	}
	if err := e.saveLogOrPoison(); err != nil {
		return TxnResult{Message: message}, err
	}
	txnTotal.WithLabelValues(string(op), "rejected").Inc()
	return TxnResult{Success: false, Message: message, NewBalance: balance}, nil
}

// writePending appends the PENDING record and persists the log before any
// balance mutation (the write-ahead rule). On failure the record is dropped
// from memory: the transaction never started.
func (e *Engine) writePending(txnID string, op Operation, accountID string, amount float64) error {
	e.log[txnID] = &Record{
		Status:    StatusPending,
		Operation: op,
		AccountID: accountID,
		Amount:    amount,
	}
	if err := e.store.SaveLog(e.log); err != nil {
		delete(e.log, txnID)
		return fmt.Errorf("write pending record: %w", err)
	}
	return nil
}

// rollback transitions the record to ROLLED_BACK after a failed mutation and
// returns the failure triple.
func (e *Engine) rollback(txnID string, op Operation, cause error) (TxnResult, error) {
	verb := "Deposit"
	if op == OpWithdraw {
		verb = "Withdraw"
	}
	msg := verb + " failed: " + cause.Error()

	rec := e.log[txnID]
	rec.Status = StatusRolledBack
	rec.Success = false
	rec.Message = msg
	rec.NewBalance = 0
	if err := e.saveLogOrPoison(); err != nil {
		return TxnResult{Message: msg}, err
	}

	txnTotal.WithLabelValues(string(op), "rolled_back").Inc()
	e.logger.Error("transaction rolled back",
		slog.String("transaction_id", txnID),
		slog.String("operation", string(op)),
		slog.String("error", cause.Error()))
	return TxnResult{Success: false, Message: msg, NewBalance: 0}, fmt.Errorf("ledger %s: %w", strings.ToLower(verb), cause)
}

// commit moves the PENDING record to COMMITTED with the final result.
func (e *Engine) commit(txnID string, res TxnResult) error {
	rec := e.log[txnID]
	rec.Status = StatusCommitted
	rec.Success = res.Success
	rec.Message = res.Message
	rec.NewBalance = res.NewBalance
	if err := e.saveLogOrPoison(); err != nil {
		return err
	}
	txnTotal.WithLabelValues(string(rec.Operation), "committed").Inc()
	return nil
}

// saveLogOrPoison persists the log; a failure here is fatal because the engine
// can no longer guarantee idempotent replay.
func (e *Engine) saveLogOrPoison() error {
	if err := e.store.SaveLog(e.log); err != nil {
		e.poisoned = true
		e.logger.Error("transaction log write failed, refusing further writes",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domainerrors.ErrLedgerUnavailable, err)
	}
	return nil
}

// formatAmount renders amounts the way the wire protocol and the original
// service messages do: shortest decimal form, with a trailing ".0" for whole
// numbers ("Deposited 100.0").
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
