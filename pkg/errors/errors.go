// Package errors provides the structured error taxonomy for the Steadfast client.
//
// Every failure surfaced by the library is an [*Error] tagged with a [Code]:
//   - CONFIGURATION_ERROR: missing or malformed client configuration
//   - VALIDATION_ERROR: caller input rejected locally, carries [Error.Field]
//   - AUTHENTICATION_ERROR: the API rejected the credentials (HTTP 401)
//   - NOT_FOUND: the requested resource does not exist (HTTP 404)
//   - API_ERROR: any other non-2xx response or an unparseable body
//   - NETWORK_ERROR: connection failures, timeouts, transport errors
//
// # Usage
//
//	order, err := client.Orders().Create(ctx, params)
//	switch {
//	case errors.Is(err, errors.ErrCodeValidation):
//	    fmt.Println("bad field:", errors.FieldOf(err))
//	case stderrors.Is(err, errors.ErrNotFound):
//	    // sentinel values match by code
//	}
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per failure kind.
const (
	ErrCodeConfiguration  Code = "CONFIGURATION_ERROR"
	ErrCodeValidation     Code = "VALIDATION_ERROR"
	ErrCodeAuthentication Code = "AUTHENTICATION_ERROR"
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeAPI            Code = "API_ERROR"
	ErrCodeNetwork        Code = "NETWORK_ERROR"
)

// Sentinel values for use with the standard library's errors.Is.
// They match any *Error carrying the same code.
var (
	ErrConfiguration  = &Error{Code: ErrCodeConfiguration}
	ErrValidation     = &Error{Code: ErrCodeValidation}
	ErrAuthentication = &Error{Code: ErrCodeAuthentication}
	ErrNotFound       = &Error{Code: ErrCodeNotFound}
	ErrAPI            = &Error{Code: ErrCodeAPI}
	ErrNetwork        = &Error{Code: ErrCodeNetwork}
)

// Error is a structured error with a code and optional context.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message

	// Field names the offending input for VALIDATION_ERROR.
	Field string

	// StatusCode is the HTTP status for API and authentication errors; 0 when unknown.
	StatusCode int

	// RetryAfter is a suggested delay before retrying a NETWORK_ERROR; 0 if none.
	RetryAfter time.Duration

	Cause error // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var s string
	switch e.Code {
	case ErrCodeValidation:
		if e.Field != "" {
			s = fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
		} else {
			s = "validation error: " + e.Message
		}
	case ErrCodeAPI:
		if e.StatusCode != 0 {
			s = fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
		} else {
			s = "api error: " + e.Message
		}
	case ErrCodeNetwork:
		s = "network error: " + e.Message
		if e.RetryAfter > 0 {
			s += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
		}
	case ErrCodeConfiguration:
		s = "configuration error: " + e.Message
	case ErrCodeAuthentication:
		s = "authentication error: " + e.Message
	case ErrCodeNotFound:
		s = "not found: " + e.Message
	default:
		s = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
// A target with an empty code never matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
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

// Configuration reports a missing or malformed setting.
func Configuration(format string, args ...any) *Error {
	return New(ErrCodeConfiguration, format, args...)
}

// Validation reports that the named input field failed a local check.
func Validation(field, format string, args ...any) *Error {
	e := New(ErrCodeValidation, format, args...)
	e.Field = field
	return e
}

// Authentication reports an HTTP 401 from the API.
func Authentication(msg string) *Error {
	return &Error{Code: ErrCodeAuthentication, Message: msg, StatusCode: 401}
}

// NotFound reports an HTTP 404 from the API.
func NotFound(msg string) *Error {
	return &Error{Code: ErrCodeNotFound, Message: msg, StatusCode: 404}
}

// API reports a non-2xx response or an unusable body. status may be 0.
func API(status int, msg string) *Error {
	return &Error{Code: ErrCodeAPI, Message: msg, StatusCode: status}
}

// Network reports a transport failure wrapping cause.
func Network(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeNetwork, cause, format, args...)
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

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// FieldOf returns the offending field of a validation error, or "".
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
