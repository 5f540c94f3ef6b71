// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/budget"
	"github.com/expense-tracker/web/internal/application/usecase/expense"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// GetDashboardInput represents the dashboard filters as received from the view.
type GetDashboardInput struct {
	Category   string
	DateFilter string
}

// TopCategory is the category with the largest total spend.
type TopCategory struct {
	Category entity.CategoryName
	Icon     string
	Amount   decimal.Decimal
}

// MonthBar is one bar of the monthly spending chart.
type MonthBar struct {
	Label  string
	Amount decimal.Decimal
	Height int // percent of the tallest bar
}

// GetDashboardOutput is the dashboard view model.
type GetDashboardOutput struct {
	Expenses          []*entity.ExpenseRecord
	Category          entity.CategoryName
	DateFilter        expense.DateFilter
	DateRangeLabel    string
	TotalSpent        decimal.Decimal
	TopCategory       *TopCategory
	MonthlyBudget     decimal.Decimal
	RemainingBudget   decimal.Decimal
	BudgetUsedPercent int
	Band              valueobject.Band
	MonthlySeries     []MonthBar
}

// GetDashboardUseCase assembles the dashboard from expenses and the current
// month's budget.
type GetDashboardUseCase struct {
	expenseSource adapter.ExpenseSource
	budgetSource  adapter.BudgetSource
	clock         adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	expenseSource adapter.ExpenseSource,
	budgetSource adapter.BudgetSource,
	clock adapter.Clock,
) *GetDashboardUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &GetDashboardUseCase{
		expenseSource: expenseSource,
		budgetSource:  budgetSource,
		clock:         clock,
	}
}

// Execute fetches expenses and budgets concurrently and summarizes them.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	dateFilter, ok := expense.ParseDateFilter(input.DateFilter)
	if !ok {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFilter,
			"date_filter must be: today, week, month, or all",
			domainerror.ErrInvalidDateFilter,
		)
	}

	var category entity.CategoryName
	if input.Category != "" {
		parsed, ok := entity.ParseCategoryName(input.Category)
		if !ok {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidCategoryFilter,
				fmt.Sprintf("unknown category %q", input.Category),
				domainerror.ErrInvalidCategoryFilter,
			)
		}
		category = parsed
	}

	var (
		records     []*entity.ExpenseRecord
		allocations []*entity.BudgetAllocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = uc.expenseSource.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allocations, err = uc.budgetSource.ListCurrentMonth(gctx)
		if err != nil {
			return fmt.Errorf("failed to load current budget: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.clock()
	summary := expense.FilterAndSummarize(records, category, dateFilter, now)

	monthlyBudget := decimal.Zero
	if total, _ := budget.SplitAllocations(allocations); total != nil {
		monthlyBudget = total.Amount
	}

	remaining := monthlyBudget.Sub(summary.TotalSpent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	used := valueobject.Percent(summary.TotalSpent, monthlyBudget)

	output := &GetDashboardOutput{
		Expenses:          summary.Filtered,
		Category:          category,
		DateFilter:        dateFilter,
		DateRangeLabel:    dateFilter.Label(),
		TotalSpent:        summary.TotalSpent,
		MonthlyBudget:     monthlyBudget,
		RemainingBudget:   remaining,
		BudgetUsedPercent: used,
		Band:              valueobject.BandFor(used),
		MonthlySeries:     Bars(expense.MonthlySeries(records)),
	}
	if summary.TopCategory != nil {
		output.TopCategory = &TopCategory{
			Category: summary.TopCategory.Category,
			Icon:     summary.TopCategory.Category.Icon(),
			Amount:   summary.TopCategory.Amount,
		}
	}

	return output, nil
}

// Bars scales the monthly series against its largest bucket.
func Bars(series []expense.MonthBucket) []MonthBar {
	max := decimal.Zero
	for _, bucket := range series {
		if bucket.Amount.GreaterThan(max) {
			max = bucket.Amount
		}
	}

	bars := make([]MonthBar, 0, len(series))
	for _, bucket := range series {
		bars = append(bars, MonthBar{
			Label:  bucket.Label,
			Amount: bucket.Amount,
			Height: valueobject.Percent(bucket.Amount, max),
		})
	}
	return bars
}
