// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// GetExpenseInput represents the input for loading one expense.
type GetExpenseInput struct {
	ID int64
}

// GetExpenseOutput holds the loaded expense.
type GetExpenseOutput struct {
	Expense *entity.ExpenseRecord
}

// GetExpenseUseCase loads one expense, e.g. to pre-fill the edit form.
type GetExpenseUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseSource adapter.ExpenseSource) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseSource: expenseSource,
	}
}

// Execute loads the expense.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	record, err := uc.expenseSource.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %d: %w", input.ID, err)
	}
	return &GetExpenseOutput{Expense: record}, nil
}
