// Package handlers holds the HTTP handlers of the external wallet API.
//
// A handler binds the JSON body, hands the call to the replicated writer and
// translates the resulting triple to a status code. All money semantics live
// below this layer.
package handlers

import (
	"context"

	"github.com/Haleralex/ftwallet/internal/adapters/http/common"
	"github.com/Haleralex/ftwallet/internal/ledger"
	"github.com/Haleralex/ftwallet/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionWriter is the slice of the replicated writer the API needs.
type TransactionWriter interface {
	Deposit(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error)
	Withdraw(ctx context.Context, accountID string, amount float64, txnID string) (ledger.TxnResult, error)
	GetBalance(ctx context.Context, accountID string) (ledger.BalanceResult, error)
}

// WalletHandler serves /deposit, /withdraw and /balance.
type WalletHandler struct {
	writer TransactionWriter
}

// NewWalletHandler creates the handler over a replicated writer.
func NewWalletHandler(writer TransactionWriter) *WalletHandler {
	return &WalletHandler{writer: writer}
}

// ============================================
// Request DTOs
// ============================================

// TransactionRequest is the body of POST /deposit and POST /withdraw.
// transaction_id is optional; the adapter assigns a UUID when absent so a
// client without retry logic still gets an idempotency key.
type TransactionRequest struct {
	AccountID     string  `json:"account_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transaction_id"`
}

// BalanceRequest is the body of POST /balance.
type BalanceRequest struct {
	AccountID string `json:"account_id" binding:"required"`
}

// ============================================
// HTTP Handlers
// ============================================

// Deposit handles POST /deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req TransactionRequest
	if !BindJSON(c, &req) {
		return
	}

	txnID := req.TransactionID
	if txnID == "" {
		txnID = uuid.New().String()
	}

	ctx := logger.WithTransactionID(c.Request.Context(), txnID)
	res, err := h.writer.Deposit(ctx, req.AccountID, req.Amount, txnID)
	common.Transaction(c, res, txnID, err)
}

// Withdraw handles POST /withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req TransactionRequest
	if !BindJSON(c, &req) {
		return
	}

	txnID := req.TransactionID
	if txnID == "" {
		txnID = uuid.New().String()
	}

	ctx := logger.WithTransactionID(c.Request.Context(), txnID)
	res, err := h.writer.Withdraw(ctx, req.AccountID, req.Amount, txnID)
	common.Transaction(c, res, txnID, err)
}

// Balance handles POST /balance. Reads are served by the primary alone.
func (h *WalletHandler) Balance(c *gin.Context) {
	var req BalanceRequest
	if !BindJSON(c, &req) {
		return
	}

	res, err := h.writer.GetBalance(c.Request.Context(), req.AccountID)
	common.Balance(c, res, err)
}

// RegisterRoutes registers the wallet routes.
//
// Routes:
// - POST /deposit  - replicate and apply a deposit
// - POST /withdraw - replicate and apply a withdraw
// - POST /balance  - read the primary balance
func (h *WalletHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/deposit", h.Deposit)
	router.POST("/withdraw", h.Withdraw)
	router.POST("/balance", h.Balance)
}
