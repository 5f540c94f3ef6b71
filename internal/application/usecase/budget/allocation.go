// Package budget contains budget allocation use cases.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// Allocation is the reconciliation of a total budget against its category
// allocations.
type Allocation struct {
	Total             decimal.Decimal
	AllocatedSum      decimal.Decimal
	AllocationPercent int
	OverAllocated     bool
}

// ComputeAllocation sums the category allocations and relates them to the
// total. Categories missing from the map count as zero.
func ComputeAllocation(total decimal.Decimal, allocations map[entity.CategoryName]decimal.Decimal) Allocation {
	sum := decimal.Zero
	for _, amount := range allocations {
		sum = sum.Add(amount)
	}

	percent := valueobject.Percent(sum, total)

	return Allocation{
		Total:             total,
		AllocatedSum:      sum,
		AllocationPercent: percent,
		OverAllocated:     percent > 100,
	}
}

// ValidateAllocation computes the allocation and rejects it when it must
// not be submitted.
func ValidateAllocation(total decimal.Decimal, allocations map[entity.CategoryName]decimal.Decimal) (Allocation, error) {
	allocation := ComputeAllocation(total, allocations)

	if !total.IsPositive() {
		return allocation, domainerror.NewBudgetError(
			domainerror.ErrCodeNonPositiveTotal,
			"total budget must be greater than zero",
			domainerror.ErrNonPositiveTotalBudget,
		)
	}

	for category := range allocations {
		if !category.IsValid() {
			return allocation, domainerror.NewBudgetError(
				domainerror.ErrCodeUnknownBudgetCategory,
				fmt.Sprintf("unknown budget category %q", category),
				domainerror.ErrUnknownBudgetCategory,
			)
		}
	}

	for _, def := range entity.Categories() {
		if amount, ok := allocations[def.Name]; ok && amount.IsNegative() {
			return allocation, domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeAllocation,
				fmt.Sprintf("allocation for %s cannot be negative", def.Name),
				domainerror.ErrNegativeCategoryAllocation,
			)
		}
	}

	if allocation.OverAllocated {
		return allocation, domainerror.NewBudgetError(
			domainerror.ErrCodeOverAllocated,
			"Category allocations exceed your total budget. Please adjust your category budgets.",
			domainerror.ErrOverAllocated,
		)
	}

	return allocation, nil
}
