// Package apperr defines the error taxonomy shared by the pipeline and the
// HTTP layer. Every failure that crosses the service boundary is tagged with
// a Kind so handlers can branch exhaustively instead of string-matching.
package apperr

import "errors"

// Kind classifies a failure into one of the categories the HTTP layer maps
// to status codes.
type Kind int

const (
	// KindInternal is any unexpected internal fault. Mapped to 500 with a
	// generic message; the underlying detail never reaches the client.
	KindInternal Kind = iota
	// KindInvalidInput is a missing or malformed request parameter. Mapped to 400.
	KindInvalidInput
	// KindInvalidSymbol means the upstream provider reported an error for the
	// symbol (typically an unknown ticker). Mapped to 400.
	KindInvalidSymbol
	// KindNoData means the upstream response parsed but carried no usable
	// series for the requested window. Mapped to 400.
	KindNoData
	// KindRateLimited means the upstream provider reported quota exhaustion.
	// Mapped to 429.
	KindRateLimited
	// KindTransport is a network or timeout failure talking to the upstream
	// provider. Mapped to 500.
	KindTransport
)

// Error is a tagged application error.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New creates a tagged error with a message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap creates a tagged error wrapping an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

// Message returns the client-safe message without the wrapped cause.
func (e *Error) Message() string { return e.msg }

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.err }

// KindOf extracts the Kind from an error chain. Untagged errors classify as
// KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of a tagged error, or the given
// fallback for untagged errors.
func MessageOf(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.msg
	}
	return fallback
}
