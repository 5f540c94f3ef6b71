// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// ReportSummary aggregates one period's expenses against its budget.
type ReportSummary struct {
	Period            valueobject.Period
	TotalExpenses     decimal.Decimal
	TotalBudget       decimal.Decimal
	CategoryBreakdown []CategoryBreakdown
}

// CategoryBreakdown is one category's share of a report's expenses.
type CategoryBreakdown struct {
	Category   CategoryName
	Amount     decimal.Decimal
	Percentage int
}
