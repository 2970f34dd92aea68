// Package ledger - the wallet ledger engine.
//
// The engine keeps an in-memory account map backed by two JSON files: the
// wallet store (account -> balance) and the transaction log. The transaction
// log is a write-ahead log: every mutating operation is recorded PENDING
// before the balance changes and moved to COMMITTED only after the wallet
// store has been persisted, so a crash can never leave a mutation in an
// unknown state.
package ledger

// Status is the lifecycle state of a transaction record.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusCommitted  Status = "COMMITTED"
	StatusRolledBack Status = "ROLLED_BACK"
)

// IsValid checks if the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCommitted, StatusRolledBack:
		return true
	default:
		return false
	}
}

// Operation is the kind of balance mutation a record describes.
type Operation string

const (
	OpDeposit  Operation = "DEPOSIT"
	OpWithdraw Operation = "WITHDRAW"
)

// Record is one entry in the transaction log, keyed by the client-supplied
// transaction ID. A COMMITTED record is the authoritative, replayable outcome
// of the transaction: retries with the same ID get these fields back verbatim.
type Record struct {
	Status     Status    `json:"status"`
	Operation  Operation `json:"operation"`
	AccountID  string    `json:"account_id"`
	Amount     float64   `json:"amount"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	NewBalance float64   `json:"new_balance"`
}

// TxnResult is the outcome of a deposit or withdraw.
type TxnResult struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	NewBalance float64 `json:"new_balance"`
}

// BalanceResult is the outcome of a balance query.
type BalanceResult struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}
