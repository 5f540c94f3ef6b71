// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	StartDate *time.Time // Optional start date for statistics
	EndDate   *time.Time // Optional end date for statistics
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	Name         entity.CategoryName
	Icon         string
	ExpenseCount int
	PeriodTotal  decimal.Decimal
}

// ListCategoriesUseCase handles listing the closed category set.
type ListCategoriesUseCase struct {
	expenseSource adapter.ExpenseSource
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(expenseSource adapter.ExpenseSource) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		expenseSource: expenseSource,
	}
}

// Execute lists the categories in display order. When a date range is
// given each category also carries its spending in that range.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	definitions := entity.Categories()

	counts := make(map[entity.CategoryName]int)
	totals := make(map[entity.CategoryName]decimal.Decimal)
	if input.StartDate != nil && input.EndDate != nil {
		records, err := uc.expenseSource.ListByDateRange(ctx, *input.StartDate, *input.EndDate)
		if err != nil {
			// Log error but continue without stats
			slog.Warn("Failed to load category statistics", "error", err)
		}
		for _, record := range records {
			counts[record.Category]++
			totals[record.Category] = totals[record.Category].Add(record.Amount)
		}
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(definitions)),
	}
	for _, def := range definitions {
		output.Categories = append(output.Categories, &CategoryOutput{
			Name:         def.Name,
			Icon:         def.Icon,
			ExpenseCount: counts[def.Name],
			PeriodTotal:  totals[def.Name],
		})
	}

	return output, nil
}
