// Package budget contains budget allocation use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// GetBudgetFormInput represents the input for loading a period's budget.
type GetBudgetFormInput struct {
	Period valueobject.Period
}

// GetBudgetFormOutput is the budget form pre-filled for one period.
type GetBudgetFormOutput struct {
	Period      valueobject.Period
	Total       *entity.BudgetAllocation
	Allocations map[entity.CategoryName]decimal.Decimal
	Allocation  Allocation
	Statuses    []entity.BudgetStatus
}

// GetBudgetFormUseCase loads a period's allocations and their spending status.
type GetBudgetFormUseCase struct {
	budgetSource  adapter.BudgetSource
	expenseSource adapter.ExpenseSource
}

// NewGetBudgetFormUseCase creates a new GetBudgetFormUseCase instance.
func NewGetBudgetFormUseCase(
	budgetSource adapter.BudgetSource,
	expenseSource adapter.ExpenseSource,
) *GetBudgetFormUseCase {
	return &GetBudgetFormUseCase{
		budgetSource:  budgetSource,
		expenseSource: expenseSource,
	}
}

// Execute loads the form. A period without a total allocation yields
// ErrTotalBudgetNotFound so the caller can offer an empty form instead.
func (uc *GetBudgetFormUseCase) Execute(ctx context.Context, input GetBudgetFormInput) (*GetBudgetFormOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"please select a valid month",
			domainerror.ErrInvalidPeriod,
		)
	}

	allocations, err := uc.budgetSource.ListByPeriod(ctx, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for %s: %w", input.Period, err)
	}

	total, byCategory := SplitAllocations(allocations)
	if total == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeTotalBudgetNotFound,
			fmt.Sprintf("no budget set for %s", input.Period.Label()),
			domainerror.ErrTotalBudgetNotFound,
		)
	}

	amounts := make(map[entity.CategoryName]decimal.Decimal, len(byCategory))
	for category, allocation := range byCategory {
		amounts[category] = allocation.Amount
	}

	start, end := input.Period.Bounds(time.Local)
	expenses, err := uc.expenseSource.ListByDateRange(ctx, start, end.Add(-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for %s: %w", input.Period, err)
	}

	return &GetBudgetFormOutput{
		Period:      input.Period,
		Total:       total,
		Allocations: amounts,
		Allocation:  ComputeAllocation(total.Amount, amounts),
		Statuses:    ComputeStatus(allocations, expenses),
	}, nil
}
