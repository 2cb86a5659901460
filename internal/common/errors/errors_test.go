package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Constructor Tests
// ==========================

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{
			name:      "validation failed",
			err:       NewValidationFailedError([]string{"age: required", "sex: enum"}),
			code:      ErrCodeValidationFailed,
			retryable: false,
		},
		{
			name:      "store connection failed",
			err:       NewStoreConnectionFailedError(fmt.Errorf("connection refused")),
			code:      ErrCodeStoreConnectionFailed,
			retryable: true,
		},
		{
			name:      "plan search failed",
			err:       NewPlanSearchFailedError(fmt.Errorf("cursor closed")),
			code:      ErrCodePlanSearchFailed,
			retryable: true,
		},
		{
			name:      "plan search timeout",
			err:       NewPlanSearchTimeoutError(),
			code:      ErrCodePlanSearchTimeout,
			retryable: true,
		},
		{
			name:      "not implemented",
			err:       NewNotImplementedError("Claims estimate functionality"),
			code:      ErrCodeNotImplemented,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

// The estimateclaims stub derives its reply from this constructor, so the
// phrasing is part of the tool's public contract.
func TestNewNotImplementedError_Message(t *testing.T) {
	err := NewNotImplementedError("Claims estimate functionality")
	assert.Equal(t, "Claims estimate functionality is not yet implemented", err.Message)
}

func TestStandardError_ErrorIncludesDetails(t *testing.T) {
	err := NewStoreConnectionFailedError(fmt.Errorf("connection refused"))
	assert.Contains(t, err.Error(), "STORE_CONNECTION_FAILED")
	assert.Contains(t, err.Error(), "connection refused")

	bare := NewPlanSearchTimeoutError()
	assert.Contains(t, bare.Error(), "PLAN_SEARCH_TIMEOUT")
}
