// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID int64
	ExpenseFields
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseRecord
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseSource adapter.ExpenseSource) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseSource: expenseSource,
	}
}

// Execute validates and stores a new expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	record := entity.NewExpenseRecord(
		input.UserID,
		input.Amount,
		strings.TrimSpace(input.Description),
		input.Category,
		input.Date,
	)
	record.Tags = input.Tags

	created, err := uc.expenseSource.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Expense created",
		"category", string(created.Category),
		"amount", created.Amount.String(),
	)

	return &CreateExpenseOutput{Expense: created}, nil
}
