// Package report contains monthly report use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
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

// GetReportInput represents the input for a monthly report.
type GetReportInput struct {
	Period valueobject.Period
}

// CategoryStatus is one breakdown row set against its category budget.
type CategoryStatus struct {
	entity.CategoryBreakdown
	Icon          string
	Budget        *decimal.Decimal
	BudgetPercent int
	Band          valueobject.Band
}

// GetReportOutput is the monthly report view.
type GetReportOutput struct {
	Summary           entity.ReportSummary
	BudgetUsedPercent int
	Band              valueobject.Band
	Categories        []CategoryStatus
}

// GetReportUseCase builds a period's report from its expenses and budgets.
type GetReportUseCase struct {
	expenseSource adapter.ExpenseSource
	budgetSource  adapter.BudgetSource
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(
	expenseSource adapter.ExpenseSource,
	budgetSource adapter.BudgetSource,
) *GetReportUseCase {
	return &GetReportUseCase{
		expenseSource: expenseSource,
		budgetSource:  budgetSource,
	}
}

// Execute builds the report. A period without budgets reports a zero total
// budget rather than failing.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	if !input.Period.IsValid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidReportPeriod,
			"year and month must describe a valid month",
			domainerror.ErrInvalidReportPeriod,
		)
	}

	var (
		expenses    []*entity.ExpenseRecord
		allocations []*entity.BudgetAllocation
	)

	start, end := input.Period.Bounds(time.Local)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = uc.expenseSource.ListByDateRange(gctx, start, end.Add(-time.Nanosecond))
		if err != nil {
			return fmt.Errorf("failed to load expenses for %s: %w", input.Period, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		allocations, err = uc.budgetSource.ListByPeriod(gctx, input.Period)
		if err != nil {
			return fmt.Errorf("failed to load budgets for %s: %w", input.Period, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	output := BuildReport(input.Period, expenses, allocations)

	slog.Debug("Report built",
		"period", input.Period.String(),
		"expenses", len(expenses),
		"budget_used_percent", output.BudgetUsedPercent,
	)

	return output, nil
}

// BuildReport computes a report from records already in memory. Records
// dated outside the period are ignored.
func BuildReport(
	period valueobject.Period,
	expenses []*entity.ExpenseRecord,
	allocations []*entity.BudgetAllocation,
) *GetReportOutput {
	inPeriod := make([]*entity.ExpenseRecord, 0, len(expenses))
	for _, record := range expenses {
		if record != nil && period.Contains(record.Date) {
			inPeriod = append(inPeriod, record)
		}
	}

	totalExpenses := expense.TotalSpent(inPeriod)

	totals := expense.TotalsByCategory(inPeriod)
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})

	breakdown := make([]entity.CategoryBreakdown, 0, len(totals))
	for _, total := range totals {
		breakdown = append(breakdown, entity.CategoryBreakdown{
			Category:   total.Category,
			Amount:     total.Amount,
			Percentage: valueobject.Percent(total.Amount, totalExpenses),
		})
	}

	totalAllocation, byCategory := budget.SplitAllocations(allocations)
	totalBudget := decimal.Zero
	if totalAllocation != nil {
		totalBudget = totalAllocation.Amount
	}

	categories := make([]CategoryStatus, 0, len(breakdown))
	for _, row := range breakdown {
		status := CategoryStatus{
			CategoryBreakdown: row,
			Icon:              row.Category.Icon(),
		}
		if allocation, ok := byCategory[row.Category]; ok {
			amount := allocation.Amount
			status.Budget = &amount
		}
		status.BudgetPercent = CategoryBudgetStatus(row.Amount, status.Budget)
		status.Band = valueobject.BandFor(status.BudgetPercent)
		categories = append(categories, status)
	}

	used := BudgetUsedPercent(totalExpenses, totalBudget)

	return &GetReportOutput{
		Summary: entity.ReportSummary{
			Period:            period,
			TotalExpenses:     totalExpenses,
			TotalBudget:       totalBudget,
			CategoryBreakdown: breakdown,
		},
		BudgetUsedPercent: used,
		Band:              valueobject.BandFor(used),
		Categories:        categories,
	}
}
