package domain

import "errors"

// Sentinel domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// Settlement flow.
	ErrInvalidTransition  = errors.New("invalid payment status transition")
	ErrSettlementMismatch = errors.New("payment amount does not match document total")
	// ErrStatusUpdateFailed marks the partial-failure mode where the payment
	// transaction was persisted but the document status update did not go
	// through. The retry path must re-attempt only the status update.
	ErrStatusUpdateFailed = errors.New("transaction recorded but status update failed")

	// Export pipeline.
	ErrExportInProgress = errors.New("an export for this document is already running")
)
