// Package error defines domain-specific errors for the Expense Tracker web tier.
package error

import "errors"

// Expense domain errors.
var (
	// ErrInvalidExpenseAmount is returned when the amount is below the minimum.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrMissingDescription is returned when the description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrInvalidExpenseCategory is returned when the category is outside the closed set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrMissingExpenseDate is returned when the date is not provided.
	ErrMissingExpenseDate = errors.New("date is required")

	// ErrExpenseNotFound is returned when the expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeMissingDescription     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseDate     ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010005"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
