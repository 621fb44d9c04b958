// Package domainerrors carries classified errors from the domain and service
// layers to the transport boundary.
//
// Services return *Error values built with New or Wrap. Handlers map the code
// to a response with ToHTTPStatus and never inspect messages.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies an error for the caller.
type Code string

const (
	// CodeValidation is a field-level or rule violation attributable to the client.
	CodeValidation Code = "validation_error"
	// CodeNotFound means a referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeInvalidState means an entity is in the wrong status for the operation.
	CodeInvalidState Code = "invalid_state"
	// CodeInvalidTransition means a claim status change is not allowed.
	CodeInvalidTransition Code = "invalid_transition"
	// CodeOutOfRange means a value falls outside an allowed window (e.g. policy period).
	CodeOutOfRange Code = "out_of_range"
	// CodeConflict is a duplicate identity, unique violation or stale version.
	CodeConflict Code = "conflict"
	// CodeBadRequest is a malformed request (undecodable body, bad identifiers).
	CodeBadRequest Code = "bad_request"
	// CodeTimeout means the use-case ran out of time.
	CodeTimeout Code = "timeout"
	// CodeInternal is everything the client cannot fix.
	CodeInternal Code = "internal_error"
)

// Error is a classified error. The message is safe to return to clients for
// every code except CodeInternal.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap classifies err under code with a caller-facing message.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// error was never classified.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether the outermost classified error carries code.
func HasCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// Message returns the caller-facing message of the outermost classified error.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a code to the response status used by every handler.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeInvalidState, CodeInvalidTransition, CodeOutOfRange, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
