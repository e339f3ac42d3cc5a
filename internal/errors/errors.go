// Package errors provides the structured error taxonomy shared by the HTTP
// handlers and the services behind them.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeDeliveryFailed     ErrorCode = "DELIVERY_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// Hints attached to SERVICE_UNAVAILABLE errors raised by the mail transport.
const (
	HintAuthentication = "authentication"
	HintConnectivity   = "connectivity"
	HintConfiguration  = "configuration"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Fields    []string  `json:"fields,omitempty"`
	Hint      string    `json:"hint,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`

	// Title is the short "error" string returned to HTTP callers.
	Title string `json:"-"`
	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// HTTPStatus maps the error code onto a response status.
func (e *StandardError) HTTPStatus() int {
	return HTTPStatus(e.Code)
}

// HTTPStatus maps an error code onto a response status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeServiceUnavailable, ErrCodeDeliveryFailed, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewInvalidInputError creates a non-retryable client error.
func NewInvalidInputError(title, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Title:     title,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingFieldsError reports which required fields were blank.
func NewMissingFieldsError(fields []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Title:     "Missing required fields",
		Message:   "Missing required fields: " + strings.Join(fields, ", "),
		Fields:    fields,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewServiceUnavailableError creates an error for an unconfigured dependency.
func NewServiceUnavailableError(title, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeServiceUnavailable,
		Title:     title,
		Message:   message,
		Hint:      HintConfiguration,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportUnavailableError wraps a failed mail transport verification.
func NewTransportUnavailableError(hint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeServiceUnavailable,
		Title:     "Email service configuration error",
		Message:   fmt.Sprintf("mail transport %s check failed", hint),
		Details:   err.Error(),
		Hint:      hint,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewDeliveryFailedError wraps a send failure after successful verification.
func NewDeliveryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDeliveryFailed,
		Title:     "Failed to send email",
		Message:   "mail transport rejected the message",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Title:     "Internal server error",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// IsCode reports whether err is a StandardError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}
