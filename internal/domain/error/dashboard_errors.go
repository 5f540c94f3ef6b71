// Package error defines domain-specific errors for the Expense Tracker web tier.
package error

import "errors"

// Dashboard and report domain errors.
var (
	// ErrInvalidDateFilter is returned when the date filter is not recognised.
	ErrInvalidDateFilter = errors.New("date_filter must be: today, week, month, or all")

	// ErrInvalidCategoryFilter is returned when the category filter is outside the closed set.
	ErrInvalidCategoryFilter = errors.New("invalid category filter")

	// ErrInvalidReportPeriod is returned when the report year or month is invalid.
	ErrInvalidReportPeriod = errors.New("invalid report period")

	// ErrUnsupportedExportFormat is returned when an export format is not supported.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// DashboardErrorCode defines error codes for dashboard and report errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFilter       DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidCategoryFilter   DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidReportPeriod     DashboardErrorCode = "DSH-010003"
	ErrCodeUnsupportedExportFormat DashboardErrorCode = "DSH-010004"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
