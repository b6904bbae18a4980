// Package apperrors defines the closed set of typed domain errors.
// Status-code mapping happens once, at the transport layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind discriminates the error taxonomy.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError carries an error kind and a user-facing message. For internal
// errors the underlying cause is kept for logging but never exposed.
type AppError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.cause }

// BadRequest reports invalid input or a violated business rule.
func BadRequest(msg string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg}
}

// NotFound reports that the targeted resource does not exist.
func NotFound(format string, args ...any) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a request that clashes with current system state.
func Conflict(format string, args ...any) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure behind a generic message.
func Internal(cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal Server Error", cause: cause}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, k Kind) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Kind == k
}

// AsAppError extracts an AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
