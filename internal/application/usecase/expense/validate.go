// Package expense contains expense-related use cases.
package expense

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// MinimumAmount is the smallest amount an expense may carry.
var MinimumAmount = decimal.New(1, -2)

// ExpenseFields is the editable part of an expense record.
type ExpenseFields struct {
	Amount      decimal.Decimal
	Description string
	Category    entity.CategoryName
	Date        time.Time
	Tags        []string
}

// Validate checks the fields the way the expense form does.
func (f ExpenseFields) Validate() error {
	if f.Amount.LessThan(MinimumAmount) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be at least 0.01",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if !f.Category.IsValid() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"please select a category",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if f.Date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseDate,
			"date is required",
			domainerror.ErrMissingExpenseDate,
		)
	}

	return nil
}
