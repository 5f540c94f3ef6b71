// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// BudgetAllocation represents a budget amount for a period.
// A nil Category makes it the total budget for the period.
type BudgetAllocation struct {
	ID       *int64
	UserID   int64
	Period   valueobject.Period
	Amount   decimal.Decimal
	Category *CategoryName
}

// NewTotalBudget creates the category-less allocation for a period.
func NewTotalBudget(userID int64, period valueobject.Period, amount decimal.Decimal) *BudgetAllocation {
	return &BudgetAllocation{
		UserID: userID,
		Period: period,
		Amount: amount,
	}
}

// NewCategoryBudget creates a category-level allocation for a period.
func NewCategoryBudget(
	userID int64,
	period valueobject.Period,
	category CategoryName,
	amount decimal.Decimal,
) *BudgetAllocation {
	return &BudgetAllocation{
		UserID:   userID,
		Period:   period,
		Amount:   amount,
		Category: &category,
	}
}

// IsTotal reports whether the allocation is the total budget for its period.
func (b *BudgetAllocation) IsTotal() bool {
	return b.Category == nil || *b.Category == ""
}

// BudgetStatus is a BudgetAllocation with its derived spending figures.
type BudgetStatus struct {
	Allocation *BudgetAllocation
	Spent      decimal.Decimal
	Remaining  decimal.Decimal // Amount - Spent; negative when overspent
	Overspent  bool
}
