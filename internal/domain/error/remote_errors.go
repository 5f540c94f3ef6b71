// Package error defines domain-specific errors for the Expense Tracker web tier.
package error

import (
	"errors"
	"fmt"
)

// Remote API errors.
var (
	// ErrRemoteUnauthorized is returned when the remote API rejects the bearer token.
	ErrRemoteUnauthorized = errors.New("remote api: unauthorized")

	// ErrRemoteUnavailable is returned when the remote API cannot be reached.
	ErrRemoteUnavailable = errors.New("remote api: unavailable")

	// ErrRemoteRejected is returned when the remote API answers with a non-success envelope.
	ErrRemoteRejected = errors.New("remote api: request rejected")

	// ErrRemoteMalformed is returned when a response cannot be decoded.
	ErrRemoteMalformed = errors.New("remote api: malformed response")
)

// RemoteErrorCode defines error codes for remote API failures.
// Format: RMT-XXYYYY where XX is category and YYYY is specific error.
type RemoteErrorCode string

const (
	// Authentication errors (01XXXX)
	ErrCodeRemoteUnauthorized RemoteErrorCode = "RMT-010001"

	// Transport errors (02XXXX)
	ErrCodeRemoteUnavailable RemoteErrorCode = "RMT-020001"
	ErrCodeRemoteRejected    RemoteErrorCode = "RMT-020002"
	ErrCodeRemoteMalformed   RemoteErrorCode = "RMT-020003"
)

// RemoteError carries the remote API's message so it can be shown verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Err, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (status %d)", e.Err, e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text to display to the user.
func (e *RemoteError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "An error occurred. Please try again."
}

// Code returns the error code matching the wrapped sentinel.
func (e *RemoteError) Code() RemoteErrorCode {
	switch {
	case errors.Is(e.Err, ErrRemoteUnauthorized):
		return ErrCodeRemoteUnauthorized
	case errors.Is(e.Err, ErrRemoteUnavailable):
		return ErrCodeRemoteUnavailable
	case errors.Is(e.Err, ErrRemoteMalformed):
		return ErrCodeRemoteMalformed
	default:
		return ErrCodeRemoteRejected
	}
}

// NewRemoteError creates a new RemoteError.
func NewRemoteError(statusCode int, message string, err error) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
