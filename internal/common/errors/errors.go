// Package errors provides the standardized error taxonomy for guardian-verdict.
//
// Every failure in the pipeline is classified here before it reaches the
// process boundary, where main discards it: the external contract is "no
// output, exit 0" for every error kind, so the taxonomy only feeds the
// opt-in diagnostic log.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"

	ErrCodeMetricsReadFailed  ErrorCode = "METRICS_READ_FAILED"
	ErrCodeMetricsParseFailed ErrorCode = "METRICS_PARSE_FAILED"

	ErrCodeOllamaUnavailable   ErrorCode = "OLLAMA_UNAVAILABLE"
	ErrCodeOllamaTimeout       ErrorCode = "OLLAMA_TIMEOUT"
	ErrCodeOllamaRequestFailed ErrorCode = "OLLAMA_REQUEST_FAILED"
	ErrCodeOllamaBadResponse   ErrorCode = "OLLAMA_BAD_RESPONSE"

	ErrCodeUnknown ErrorCode = "UNKNOWN_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// New creates a StandardError with the given code and message.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Retryable: retryable(code),
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError that carries an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *StandardError {
	e := New(code, message)
	if cause != nil {
		e.Details = cause.Error()
		e.cause = cause
	}
	return e
}

// CodeOf extracts the ErrorCode from err, or ErrCodeUnknown for errors
// produced outside this taxonomy.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeUnknown
}

// IsTimeout reports whether err was classified as an inference timeout.
func IsTimeout(err error) bool {
	return CodeOf(err) == ErrCodeOllamaTimeout
}

// retryable records which failures a caller with a retry budget could retry.
// guardian-verdict itself never retries; the flag is diagnostic only.
func retryable(code ErrorCode) bool {
	switch code {
	case ErrCodeOllamaTimeout, ErrCodeOllamaRequestFailed, ErrCodeOllamaUnavailable:
		return true
	}
	return false
}
