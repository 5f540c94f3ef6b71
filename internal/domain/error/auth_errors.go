// Package error defines domain-specific errors for the Expense Tracker web tier.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when the remote API rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when no session exists for an ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrExpiredToken is returned when the session token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrPasswordMismatch is returned when the password confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when the password is shorter than the minimum.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodePasswordMismatch AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword     AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail     AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields    AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020002"

	// Session errors (03XXXX)
	ErrCodeMissingSession AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken   AuthErrorCode = "AUTH-030002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
