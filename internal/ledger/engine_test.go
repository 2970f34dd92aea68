package ledger

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	domainerrors "github.com/Haleralex/ftwallet/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *FileStore) {
	t.Helper()
	store := NewFileStore(t.TempDir(), "primary")
	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)
	return engine, store
}

func TestDeposit_Simple(t *testing.T) {
	engine, store := newTestEngine(t)

	res, err := engine.Deposit("alice", 100.00, "t1")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Deposited 100.0", res.Message)
	assert.Equal(t, 100.0, res.NewBalance)

	// Committed record is on disk
	log, err := store.LoadLog()
	require.NoError(t, err)
	require.Contains(t, log, "t1")
	assert.Equal(t, StatusCommitted, log["t1"].Status)
	assert.Equal(t, OpDeposit, log["t1"].Operation)
	assert.True(t, log["t1"].Success)

	wallets, err := store.LoadWallets()
	require.NoError(t, err)
	assert.Equal(t, 100.0, wallets["alice"])
}

func TestDeposit_IdempotentReplay(t *testing.T) {
	engine, _ := newTestEngine(t)

	first, err := engine.Deposit("alice", 100.00, "t1")
	require.NoError(t, err)

	// Replays return the identical triple and apply the effect exactly once
	for i := 0; i < 3; i++ {
		again, err := engine.Deposit("alice", 100.00, "t1")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	balance, err := engine.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.Balance)
}

func TestMutations_NonPositiveAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"zero amount", 0},
		{"negative amount", -5.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, store := newTestEngine(t)

			res, err := engine.Deposit("alice", tt.amount, "t4")
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, "Amount must be positive", res.Message)
			assert.Equal(t, 0.0, res.NewBalance)

			// The rejection is committed and replays verbatim
			again, err := engine.Deposit("alice", tt.amount, "t4")
			require.NoError(t, err)
			assert.Equal(t, res, again)

			log, err := store.LoadLog()
			require.NoError(t, err)
			assert.Equal(t, StatusCommitted, log["t4"].Status)
			assert.False(t, log["t4"].Success)
		})
	}
}

func TestWithdraw_Success(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Deposit("alice", 100.00, "t1")
	require.NoError(t, err)

	res, err := engine.Withdraw("alice", 30.50, "t2")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Withdrew 30.5", res.Message)
	assert.Equal(t, 69.5, res.NewBalance)
}

func TestWithdraw_InsufficientBalanceIsSticky(t *testing.T) {
	engine, store := newTestEngine(t)

	res, err := engine.Withdraw("bob", 50.00, "t2")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Insufficient balance", res.Message)
	assert.Equal(t, 0.0, res.NewBalance)

	log, err := store.LoadLog()
	require.NoError(t, err)
	require.Contains(t, log, "t2")
	assert.Equal(t, StatusCommitted, log["t2"].Status)
	assert.False(t, log["t2"].Success)

	// A later deposit that would make the withdraw valid does not change the
	// cached rejection: the first recorded outcome wins.
	_, err = engine.Deposit("bob", 200.00, "t3")
	require.NoError(t, err)

	retry, err := engine.Withdraw("bob", 50.00, "t2")
	require.NoError(t, err)
	assert.Equal(t, res, retry)

	balance, err := engine.GetBalance("bob")
	require.NoError(t, err)
	assert.Equal(t, 200.0, balance.Balance)
}

func TestWithdraw_RejectionReportsCurrentBalance(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Deposit("carol", 10.00, "t1")
	require.NoError(t, err)

	res, err := engine.Withdraw("carol", 50.00, "t2")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 10.0, res.NewBalance)
}

func TestGetBalance_CreatesUnknownAccount(t *testing.T) {
	engine, store := newTestEngine(t)

	res, err := engine.GetBalance("dave")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 0.0, res.Balance)
	assert.Equal(t, "Balance retrieved", res.Message)

	wallets, err := store.LoadWallets()
	require.NoError(t, err)
	_, exists := wallets["dave"]
	assert.True(t, exists, "implicitly created account should be persisted")

	// Balance queries are never logged
	log, err := store.LoadLog()
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestRecoverPending_RollsBackAndAllowsRetry(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "primary")

	// Simulate a crash after the PENDING write and before the wallet save.
	crashed := map[string]*Record{
		"t5": {Status: StatusPending, Operation: OpDeposit, AccountID: "alice", Amount: 10.00},
	}
	require.NoError(t, store.SaveLog(crashed))

	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)

	count, err := engine.RecoverPending()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	log, err := store.LoadLog()
	require.NoError(t, err)
	assert.Equal(t, StatusRolledBack, log["t5"].Status)

	// Balance untouched by the crashed transaction
	balance, err := engine.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Balance)

	// The retry with the crashed ID applies the operation exactly once
	res, err := engine.Deposit("alice", 10.00, "t5")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 10.0, res.NewBalance)
}

func TestRecoverPending_NoPendingRecords(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Deposit("alice", 1.00, "t1")
	require.NoError(t, err)

	count, err := engine.RecoverPending()
	require.NoError(t, err)
	assert.Zero(t, count)
}

// flakyStore wraps a FileStore and fails selected operations to exercise the
// rollback and poisoning paths.
type flakyStore struct {
	*FileStore
	failSaveWallets bool
	failSaveLog     bool
	logSaves        int
	failLogSaveAt   int // fail the Nth SaveLog call (1-based), 0 = never
}

func (f *flakyStore) SaveWallets(wallets map[string]float64) error {
	if f.failSaveWallets {
		return errors.New("disk full")
	}
	return f.FileStore.SaveWallets(wallets)
}

func (f *flakyStore) SaveLog(log map[string]*Record) error {
	f.logSaves++
	if f.failSaveLog || (f.failLogSaveAt > 0 && f.logSaves == f.failLogSaveAt) {
		return errors.New("disk full")
	}
	return f.FileStore.SaveLog(log)
}

func TestDeposit_WalletSaveFailureRollsBack(t *testing.T) {
	store := &flakyStore{FileStore: NewFileStore(t.TempDir(), "primary")}
	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)

	store.failSaveWallets = true
	res, err := engine.Deposit("alice", 100.00, "t1")
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Deposit failed: disk full", res.Message)
	assert.Equal(t, 0.0, res.NewBalance)

	log, err := store.LoadLog()
	require.NoError(t, err)
	assert.Equal(t, StatusRolledBack, log["t1"].Status)

	// In-memory balance was reverted and the engine keeps working
	store.failSaveWallets = false
	res, err = engine.Deposit("alice", 100.00, "t2")
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.NewBalance)
}

func TestWithdraw_WalletSaveFailureRollsBack(t *testing.T) {
	store := &flakyStore{FileStore: NewFileStore(t.TempDir(), "primary")}
	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)

	_, err = engine.Deposit("alice", 100.00, "t1")
	require.NoError(t, err)

	store.failSaveWallets = true
	res, err := engine.Withdraw("alice", 40.00, "t2")
	require.Error(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Withdraw failed: disk full", res.Message)

	store.failSaveWallets = false
	balance, err := engine.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.Balance)
}

func TestCommitFailure_PoisonsEngine(t *testing.T) {
	store := &flakyStore{FileStore: NewFileStore(t.TempDir(), "primary")}
	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)

	// First SaveLog is the PENDING write, second is the COMMITTED write.
	store.failLogSaveAt = 2
	_, err = engine.Deposit("alice", 100.00, "t1")
	require.Error(t, err)
	assert.True(t, domainerrors.IsLedgerUnavailable(err))

	// The engine refuses all further mutations until restart.
	res, err := engine.Deposit("alice", 1.00, "t2")
	require.Error(t, err)
	assert.True(t, domainerrors.IsLedgerUnavailable(err))
	assert.False(t, res.Success)
}

func TestPendingWriteFailure_DropsTransaction(t *testing.T) {
	store := &flakyStore{FileStore: NewFileStore(t.TempDir(), "primary")}
	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)

	store.failLogSaveAt = 1
	res, err := engine.Deposit("alice", 100.00, "t1")
	require.Error(t, err)
	assert.False(t, res.Success)

	// The transaction never started: the same ID can be retried.
	res, err = engine.Deposit("alice", 100.00, "t1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 100.0, res.NewBalance)
}

func TestEngine_StatePersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "primary")

	engine, err := NewEngine(store, slog.Default())
	require.NoError(t, err)
	_, err = engine.Deposit("alice", 75.25, "t1")
	require.NoError(t, err)

	// New engine over the same files sees the committed state and the cache.
	restarted, err := NewEngine(NewFileStore(dir, "primary"), slog.Default())
	require.NoError(t, err)

	balance, err := restarted.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, 75.25, balance.Balance)

	replay, err := restarted.Deposit("alice", 75.25, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Deposited 75.25", replay.Message)
	assert.Equal(t, 75.25, replay.NewBalance)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{100, "100.0"},
		{100.5, "100.5"},
		{0.25, "0.25"},
		{1, "1.0"},
		{1234.75, "1234.75"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.amount), func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAmount(tt.amount))
		})
	}
}
