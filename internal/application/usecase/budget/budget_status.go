// Package budget contains budget allocation use cases.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// ComputeStatus derives Spent and Remaining for each allocation from the
// expenses dated inside the allocation's period. A total allocation counts
// every expense of the period; a category allocation only its category.
func ComputeStatus(
	allocations []*entity.BudgetAllocation,
	expenses []*entity.ExpenseRecord,
) []entity.BudgetStatus {
	statuses := make([]entity.BudgetStatus, 0, len(allocations))

	for _, allocation := range allocations {
		if allocation == nil {
			continue
		}

		spent := decimal.Zero
		for _, expense := range expenses {
			if expense == nil || !allocation.Period.Contains(expense.Date) {
				continue
			}
			if !allocation.IsTotal() && expense.Category != *allocation.Category {
				continue
			}
			spent = spent.Add(expense.Amount)
		}

		remaining := allocation.Amount.Sub(spent)
		statuses = append(statuses, entity.BudgetStatus{
			Allocation: allocation,
			Spent:      spent,
			Remaining:  remaining,
			Overspent:  remaining.IsNegative(),
		})
	}

	return statuses
}

// SplitAllocations separates a period's total allocation from its category
// allocations. total is nil when the period has none.
func SplitAllocations(
	allocations []*entity.BudgetAllocation,
) (total *entity.BudgetAllocation, byCategory map[entity.CategoryName]*entity.BudgetAllocation) {
	byCategory = make(map[entity.CategoryName]*entity.BudgetAllocation)
	for _, allocation := range allocations {
		if allocation == nil {
			continue
		}
		if allocation.IsTotal() {
			if total == nil {
				total = allocation
			}
			continue
		}
		byCategory[*allocation.Category] = allocation
	}
	return total, byCategory
}
