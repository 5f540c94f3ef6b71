// Package budget contains budget allocation use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// SaveBudgetInput represents the budget form submission for one period.
type SaveBudgetInput struct {
	UserID      int64
	Period      valueobject.Period
	BudgetID    *int64 // Identifier of the total allocation being edited, if any
	Total       decimal.Decimal
	Allocations map[entity.CategoryName]decimal.Decimal
}

// SaveBudgetOutput represents the stored allocations after a save.
type SaveBudgetOutput struct {
	Total      *entity.BudgetAllocation
	Categories []*entity.BudgetAllocation
	Allocation Allocation
}

// SaveBudgetUseCase handles saving a period's total and category allocations.
type SaveBudgetUseCase struct {
	budgetSource adapter.BudgetSource
}

// NewSaveBudgetUseCase creates a new SaveBudgetUseCase instance.
func NewSaveBudgetUseCase(budgetSource adapter.BudgetSource) *SaveBudgetUseCase {
	return &SaveBudgetUseCase{
		budgetSource: budgetSource,
	}
}

// Execute validates the submission and then upserts the total allocation
// followed by each category allocation. Zeroed categories that already have
// an allocation are deleted. Nothing is sent when validation fails.
func (uc *SaveBudgetUseCase) Execute(ctx context.Context, input SaveBudgetInput) (*SaveBudgetOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"please select a valid month",
			domainerror.ErrInvalidPeriod,
		)
	}

	allocation, err := ValidateAllocation(input.Total, input.Allocations)
	if err != nil {
		return nil, err
	}

	existing, err := uc.budgetSource.ListByPeriod(ctx, input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for %s: %w", input.Period, err)
	}
	existingTotal, existingByCategory := SplitAllocations(existing)

	total, err := uc.saveTotal(ctx, input, existingTotal)
	if err != nil {
		return nil, err
	}

	output := &SaveBudgetOutput{
		Total:      total,
		Categories: make([]*entity.BudgetAllocation, 0, len(input.Allocations)),
		Allocation: allocation,
	}

	for _, def := range entity.Categories() {
		amount, submitted := input.Allocations[def.Name]
		current := existingByCategory[def.Name]

		if !submitted || !amount.IsPositive() {
			if submitted && current != nil && current.ID != nil {
				if err := uc.budgetSource.Delete(ctx, *current.ID); err != nil {
					return nil, fmt.Errorf("failed to delete %s budget: %w", def.Name, err)
				}
				slog.Debug("Category budget removed",
					"period", input.Period.String(),
					"category", string(def.Name),
				)
			}
			continue
		}

		if current != nil && current.ID != nil {
			if current.Amount.Equal(amount) {
				output.Categories = append(output.Categories, current)
				continue
			}
			current.Amount = amount
			updated, err := uc.budgetSource.Update(ctx, *current.ID, current)
			if err != nil {
				return nil, fmt.Errorf("failed to update %s budget: %w", def.Name, err)
			}
			output.Categories = append(output.Categories, updated)
			continue
		}

		created, err := uc.budgetSource.Create(ctx, entity.NewCategoryBudget(input.UserID, input.Period, def.Name, amount))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s budget: %w", def.Name, err)
		}
		output.Categories = append(output.Categories, created)
	}

	slog.Info("Budget saved",
		"period", input.Period.String(),
		"total", input.Total.String(),
		"allocated", allocation.AllocatedSum.String(),
		"categories", len(output.Categories),
	)

	return output, nil
}

// saveTotal updates the total allocation the form was editing, or the
// period's existing one, and creates it otherwise.
func (uc *SaveBudgetUseCase) saveTotal(
	ctx context.Context,
	input SaveBudgetInput,
	existingTotal *entity.BudgetAllocation,
) (*entity.BudgetAllocation, error) {
	total := entity.NewTotalBudget(input.UserID, input.Period, input.Total)

	id := input.BudgetID
	if id == nil && existingTotal != nil {
		id = existingTotal.ID
	}

	if id != nil {
		total.ID = id
		updated, err := uc.budgetSource.Update(ctx, *id, total)
		if err != nil {
			return nil, fmt.Errorf("failed to update total budget: %w", err)
		}
		return updated, nil
	}

	created, err := uc.budgetSource.Create(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create total budget: %w", err)
	}
	return created, nil
}
