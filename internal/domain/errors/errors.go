// Package errors defines domain-specific error types.
// Using typed errors (instead of strings) allows clients to handle specific cases.
//
// Pattern: Sentinel Errors + Custom Error Types
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the wallet core
var (
	// Validation errors (recorded COMMITTED in the ledger so the rejection
	// itself is idempotent, surfaced to HTTP as 400)
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Ledger errors
	ErrLedgerUnavailable = errors.New("ledger log unavailable, restart required")

	// Replication errors
	ErrReplicaUnavailable = errors.New("backup replica unreachable")
	ErrReplicaRejected    = errors.New("backup replica rejected transaction")
)

// DomainError wraps errors with a machine-readable code while maintaining the
// error chain.
type DomainError struct {
	Code    string // Machine-readable error code (e.g., "BACKUP_ERROR")
	Message string // Human-readable message
	Err     error  // Underlying error (for error chains)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a request-level validation failure.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // What went wrong
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// Helper functions for common error checking

// IsValidation checks if an error is a request or amount validation failure.
func IsValidation(err error) bool {
	var valErr ValidationError
	return errors.As(err, &valErr) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientBalance)
}

// IsReplication checks if an error came from the backup replication step.
func IsReplication(err error) bool {
	return errors.Is(err, ErrReplicaUnavailable) || errors.Is(err, ErrReplicaRejected)
}

// IsLedgerUnavailable checks if the engine refused the write because a log
// commit previously failed.
func IsLedgerUnavailable(err error) bool {
	return errors.Is(err, ErrLedgerUnavailable)
}
