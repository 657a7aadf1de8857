package qerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a stable error category that callers can switch on.
type Code string

const (
	CodeUnknown            Code = "unknown"
	CodeTimeout            Code = "timeout"
	CodeNetworkUnavailable Code = "network_unavailable"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeValidationFailed   Code = "validation_failed"
	CodeServerFault        Code = "server_fault"
	CodeRefreshFailed      Code = "refresh_failed"
	CodeMalformedSession   Code = "malformed_session"
)

// Error is a simple value type that carries a Code plus the underlying error.
type Error struct {
	Code   Code
	Status int // HTTP status when the error came off the wire, 0 otherwise
	err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// New wraps an error with the provided code. If err is nil a nil is returned.
func New(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, err: err}
}

// Newf wraps a formatted message with the provided code.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, err: fmt.Errorf(format, args...)}
}

// FromStatus classifies an HTTP response status into a coded error. When
// the server supplied no message the underlying error stays nil so callers
// can tell "no detail" apart from detail that happens to echo the status
// text.
func FromStatus(status int, message string) error {
	e := &Error{Status: status}
	if message != "" {
		e.err = errors.New(message)
	}
	switch {
	case status == http.StatusUnauthorized:
		e.Code = CodeUnauthorized
	case status == http.StatusForbidden:
		e.Code = CodeForbidden
	case status == http.StatusNotFound:
		e.Code = CodeNotFound
	case status == http.StatusUnprocessableEntity:
		e.Code = CodeValidationFailed
	case status >= 500:
		e.Code = CodeServerFault
	default:
		e.Code = CodeUnknown
	}
	return e
}

// IsCode helps callers compare codes without type assertions.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// StatusOf returns the HTTP status attached to err, or 0 when err did not
// originate from a wire response.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
