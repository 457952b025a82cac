// Package errors provides structured error types for the porcus CLI.
//
// The transform itself is total and never fails; the only error surface is
// the command-line boundary (bad arguments, undecodable input). This
// package gives those failures machine-readable codes so callers and tests
// can distinguish them without string matching.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEncoding, "stdin is not valid UTF-8")
//	if errors.Is(err, errors.ErrCodeInvalidEncoding) {
//	    // Handle decoding error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the CLI boundary.
const (
	// ErrCodeInvalidInput covers malformed command-line arguments.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeInvalidEncoding covers input that cannot be decoded as UTF-8 text.
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	// ErrCodeInternal covers unexpected internal failures (e.g. stdout writes).
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
