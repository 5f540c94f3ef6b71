// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// UpdateExpenseInput represents the input for replacing an expense.
type UpdateExpenseInput struct {
	ID     int64
	UserID int64
	ExpenseFields
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.ExpenseRecord
}

// UpdateExpenseUseCase handles expense edits. Records are replaced whole.
type UpdateExpenseUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseSource adapter.ExpenseSource) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseSource: expenseSource,
	}
}

// Execute validates the fields and replaces the stored record.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := input.ID
	record := entity.NewExpenseRecord(
		input.UserID,
		input.Amount,
		strings.TrimSpace(input.Description),
		input.Category,
		input.Date,
	)
	record.ID = &id
	record.Tags = input.Tags

	updated, err := uc.expenseSource.Update(ctx, id, record)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense %d: %w", id, err)
	}

	return &UpdateExpenseOutput{Expense: updated}, nil
}
