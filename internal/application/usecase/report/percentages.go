// Package report contains monthly report use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// BudgetUsedPercent returns how much of the total budget the expenses use.
// A zero budget yields 0.
func BudgetUsedPercent(totalExpenses, totalBudget decimal.Decimal) int {
	return valueobject.Percent(totalExpenses, totalBudget)
}

// CategoryBudgetStatus returns how much of a category budget is spent.
// A missing or zero category budget yields 0.
func CategoryBudgetStatus(categoryAmount decimal.Decimal, categoryBudget *decimal.Decimal) int {
	if categoryBudget == nil {
		return 0
	}
	return valueobject.Percent(categoryAmount, *categoryBudget)
}
