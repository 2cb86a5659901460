// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler normalizes tool-call errors for the transport layer.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleToolError normalizes any error raised while serving a tool call and
// logs it with the tool name. The returned StandardError carries the message
// surfaced to the caller as a call-level failure.
func (h *ErrorHandler) HandleToolError(toolName string, err error) *StandardError {
	stdErr := h.normalizeError(err)

	h.logger.Error("tool call failed", map[string]interface{}{
		"tool":      toolName,
		"errorCode": stdErr.Code,
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	return stdErr
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
