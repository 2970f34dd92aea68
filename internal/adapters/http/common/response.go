// Package common holds the wire types shared by the HTTP layer.
//
// Kept as its own package so handlers and the router do not import each
// other.
package common

import (
	"net/http"

	domainerrors "github.com/Haleralex/ftwallet/internal/domain/errors"
	"github.com/Haleralex/ftwallet/internal/ledger"
	"github.com/gin-gonic/gin"
)

// ============================================
// Wire Format
// ============================================

// TransactionResponse mirrors the replica triple on the external API.
type TransactionResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	NewBalance    float64 `json:"new_balance"`
	TransactionID string  `json:"transaction_id"`
}

// BalanceResponse is the body of POST /balance.
type BalanceResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}

// ErrorResponse is the body of any non-transactional failure (malformed
// request, panic recovery, rate limit).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================
// Request ID
// ============================================

const RequestIDKey = "request_id"

// GetRequestID returns the request ID set by the middleware, or "".
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// ============================================
// Response Helpers
// ============================================

// Transaction writes a mutation result. Rejections (validation, insufficient
// funds, backup refusal) are committed outcomes and map to 400; anything the
// writer could not complete maps by error class.
func Transaction(c *gin.Context, res ledger.TxnResult, txnID string, err error) {
	body := TransactionResponse{
		Success:       res.Success,
		Message:       res.Message,
		NewBalance:    res.NewBalance,
		TransactionID: txnID,
	}

	switch {
	case err == nil && res.Success:
		c.JSON(http.StatusOK, body)
	case err == nil:
		c.JSON(http.StatusBadRequest, body)
	case domainerrors.IsReplication(err):
		// Backup transport failure: the reference behavior reports it to the
		// client as a 400 and lets the monitor catch the outage.
		c.JSON(http.StatusBadRequest, body)
	default:
		c.JSON(http.StatusInternalServerError, body)
	}
}

// Balance writes a balance query result.
func Balance(c *gin.Context, res ledger.BalanceResult, err error) {
	body := BalanceResponse{Success: res.Success, Balance: res.Balance, Message: res.Message}
	if err != nil {
		c.JSON(http.StatusInternalServerError, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// BadRequest writes a flat 400 for malformed requests.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: message})
}

// InternalError writes a flat 500.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: message})
}

// NotFound writes a flat 404.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Success: false, Message: message})
}
