package core

import (
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

const (
	// Operation faults
	ErrorCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"
	ErrorCodeNullReference  ErrorCode = "NULL_REFERENCE"
	ErrorCodePanicRecovered ErrorCode = "PANIC_RECOVERED"

	// Configuration errors
	ErrorCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Validation errors
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Sentinels for errors.Is matching; comparison is by code only.
var (
	ErrDivisionByZero = &Error{Code: ErrorCodeDivisionByZero}
	ErrNullReference  = &Error{Code: ErrorCodeNullReference}
	ErrPanicRecovered = &Error{Code: ErrorCodePanicRecovered}
	ErrConfigInvalid  = &Error{Code: ErrorCodeConfigInvalid}
	ErrInvalidInput   = &Error{Code: ErrorCodeInvalidInput}
)

// Error represents a structured error with code and metadata
type Error struct {
	Err      error          `json:"error"`
	Code     ErrorCode      `json:"code"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewError creates a new structured error for domain boundaries
func NewError(err error, code ErrorCode, metadata map[string]any) *Error {
	return &Error{
		Err:      err,
		Code:     code,
		Metadata: metadata,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Metadata) > 0 {
		return fmt.Sprintf("[%s] %v (metadata: %v)", e.Code, e.Err, e.Metadata)
	}
	return fmt.Sprintf("[%s] %v", e.Code, e.Err)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCode returns a copy of the error carrying a different code
func (e *Error) WithCode(code ErrorCode) *Error {
	return NewError(e.Err, code, e.Metadata)
}
