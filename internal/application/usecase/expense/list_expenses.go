// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// ListExpensesInput selects which remote listing to use. At most one of
// Category, the date range or Today is honoured, in that order.
type ListExpensesInput struct {
	Category  entity.CategoryName
	StartDate *time.Time
	EndDate   *time.Time
	Today     bool
}

// ListExpensesOutput holds the listed expenses, newest first.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseRecord
}

// ListExpensesUseCase lists expenses.
type ListExpensesUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseSource adapter.ExpenseSource) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseSource: expenseSource,
	}
}

// Execute lists the expenses matching the input.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		records []*entity.ExpenseRecord
		err     error
	)

	switch {
	case input.Category != "":
		records, err = uc.expenseSource.ListByCategory(ctx, input.Category)
	case input.StartDate != nil && input.EndDate != nil:
		records, err = uc.expenseSource.ListByDateRange(ctx, *input.StartDate, *input.EndDate)
	case input.Today:
		records, err = uc.expenseSource.ListToday(ctx)
	default:
		records, err = uc.expenseSource.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	sorted := make([]*entity.ExpenseRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return &ListExpensesOutput{Expenses: sorted}, nil
}
