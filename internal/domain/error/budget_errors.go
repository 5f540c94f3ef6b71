// Package error defines domain-specific errors for the Expense Tracker web tier.
package error

import "errors"

// Budget domain errors.
var (
	// ErrNonPositiveTotalBudget is returned when the total budget is zero or negative.
	ErrNonPositiveTotalBudget = errors.New("total budget must be greater than zero")

	// ErrNegativeCategoryAllocation is returned when a category allocation is negative.
	ErrNegativeCategoryAllocation = errors.New("category allocation cannot be negative")

	// ErrOverAllocated is returned when category allocations exceed the total budget.
	ErrOverAllocated = errors.New("category allocations exceed the total budget")

	// ErrUnknownBudgetCategory is returned when an allocation names a category outside the closed set.
	ErrUnknownBudgetCategory = errors.New("unknown budget category")

	// ErrInvalidPeriod is returned when a period is missing or malformed.
	ErrInvalidPeriod = errors.New("invalid budget period")

	// ErrTotalBudgetNotFound is returned when a period has no total budget.
	ErrTotalBudgetNotFound = errors.New("total budget not found for period")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveTotal      BudgetErrorCode = "BGT-010001"
	ErrCodeNegativeAllocation    BudgetErrorCode = "BGT-010002"
	ErrCodeOverAllocated         BudgetErrorCode = "BGT-010003"
	ErrCodeUnknownBudgetCategory BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidPeriod         BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010006"

	// Lookup errors (02XXXX)
	ErrCodeTotalBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
