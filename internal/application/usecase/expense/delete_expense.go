// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/web/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID int64
}

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseSource adapter.ExpenseSource) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseSource: expenseSource,
	}
}

// Execute removes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if err := uc.expenseSource.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", input.ID, err)
	}
	slog.Info("Expense deleted", "expense_id", input.ID)
	return nil
}
