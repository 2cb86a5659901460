// Package errors provides standardized error handling for tool-call dispatch.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeStoreConnectionFailed ErrorCode = "STORE_CONNECTION_FAILED"
	ErrCodePlanSearchFailed      ErrorCode = "PLAN_SEARCH_FAILED"
	ErrCodePlanSearchTimeout     ErrorCode = "PLAN_SEARCH_TIMEOUT"

	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable error listing the
// field-level violations of a tool-call payload.
func NewValidationFailedError(violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Tool input validation failed",
		Details:   strings.Join(violations, "; "),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreConnectionFailedError creates a retryable store connection error.
func NewStoreConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreConnectionFailed,
		Message:   "Plan store connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanSearchFailedError creates a retryable query execution error.
func NewPlanSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanSearchFailed,
		Message:   "Plan store query execution error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanSearchTimeoutError creates a retryable query timeout error.
func NewPlanSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodePlanSearchTimeout,
		Message:   "Plan store query timeout",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotImplementedError marks a capability that is advertised but not yet
// built. This is a stub marker, not a failure state.
func NewNotImplementedError(capability string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotImplemented,
		Message:   fmt.Sprintf("%s is not yet implemented", capability),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
