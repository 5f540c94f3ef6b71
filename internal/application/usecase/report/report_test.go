package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBudgetUsedPercent(t *testing.T) {
	tests := []struct {
		name     string
		expenses string
		budget   string
		want     int
		wantBand valueobject.Band
	}{
		{name: "warning band", expenses: "1850", budget: "2000", want: 93, wantBand: valueobject.BandWarning},
		{name: "nominal at the boundary", expenses: "750", budget: "1000", want: 75, wantBand: valueobject.BandNominal},
		{name: "warning just above nominal", expenses: "760", budget: "1000", want: 76, wantBand: valueobject.BandWarning},
		{name: "exactly the budget", expenses: "1000", budget: "1000", want: 100, wantBand: valueobject.BandWarning},
		{name: "over budget", expenses: "1010", budget: "1000", want: 101, wantBand: valueobject.BandOverBudget},
		{name: "zero budget", expenses: "500", budget: "0", want: 0, wantBand: valueobject.BandNominal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetUsedPercent(d(tt.expenses), d(tt.budget))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantBand, valueobject.BandFor(got))
		})
	}
}

func TestCategoryBudgetStatus(t *testing.T) {
	budget := d("200")
	zero := decimal.Zero

	assert.Equal(t, 0, CategoryBudgetStatus(d("50"), nil))
	assert.Equal(t, 0, CategoryBudgetStatus(d("50"), &zero))
	assert.Equal(t, 25, CategoryBudgetStatus(d("50"), &budget))
	assert.Equal(t, 150, CategoryBudgetStatus(d("300"), &budget))
}

func TestAvailableYears(t *testing.T) {
	assert.Equal(t, []int{2024, 2023, 2022}, AvailableYears(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
}

type stubExpenses struct {
	records []*entity.ExpenseRecord
	err     error
}

func (s *stubExpenses) List(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return s.records, s.err
}
func (s *stubExpenses) Get(ctx context.Context, id int64) (*entity.ExpenseRecord, error) {
	return nil, s.err
}
func (s *stubExpenses) ListByCategory(ctx context.Context, c entity.CategoryName) ([]*entity.ExpenseRecord, error) {
	return nil, s.err
}
func (s *stubExpenses) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseRecord, error) {
	return s.records, s.err
}
func (s *stubExpenses) ListToday(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return nil, s.err
}
func (s *stubExpenses) Create(ctx context.Context, e *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	return e, s.err
}
func (s *stubExpenses) Update(ctx context.Context, id int64, e *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	return e, s.err
}
func (s *stubExpenses) Delete(ctx context.Context, id int64) error { return s.err }

type stubBudgets struct {
	allocations []*entity.BudgetAllocation
}

func (s *stubBudgets) List(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return s.allocations, nil
}
func (s *stubBudgets) ListCurrentMonth(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return s.allocations, nil
}
func (s *stubBudgets) GetByCategory(ctx context.Context, c entity.CategoryName) (*entity.BudgetAllocation, error) {
	return nil, nil
}
func (s *stubBudgets) ListByPeriod(ctx context.Context, p valueobject.Period) ([]*entity.BudgetAllocation, error) {
	return s.allocations, nil
}
func (s *stubBudgets) Create(ctx context.Context, b *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	return b, nil
}
func (s *stubBudgets) Update(ctx context.Context, id int64, b *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	return b, nil
}
func (s *stubBudgets) Delete(ctx context.Context, id int64) error { return nil }

func reportFixture() (valueobject.Period, *stubExpenses, *stubBudgets) {
	period := valueobject.NewPeriod(2023, time.June)
	at := func(day int) time.Time { return time.Date(2023, time.June, day, 12, 0, 0, 0, time.Local) }
	food := entity.CategoryFood
	housing := entity.CategoryHousing

	expenses := &stubExpenses{records: []*entity.ExpenseRecord{
		entity.NewExpenseRecord(1, d("250"), "Groceries", entity.CategoryFood, at(2)),
		entity.NewExpenseRecord(1, d("1200"), "Rent", entity.CategoryHousing, at(1)),
		entity.NewExpenseRecord(1, d("150"), "Bus pass", entity.CategoryTransportation, at(3)),
		entity.NewExpenseRecord(1, d("250"), "Restaurant", entity.CategoryFood, at(9)),
	}}
	budgets := &stubBudgets{allocations: []*entity.BudgetAllocation{
		entity.NewTotalBudget(1, period, d("2000")),
		entity.NewCategoryBudget(1, period, food, d("400")),
		entity.NewCategoryBudget(1, period, housing, d("1200")),
	}}
	return period, expenses, budgets
}

func TestGetReportUseCase_Execute(t *testing.T) {
	period, expenses, budgets := reportFixture()
	uc := NewGetReportUseCase(expenses, budgets)

	out, err := uc.Execute(context.Background(), GetReportInput{Period: period})
	require.NoError(t, err)

	assert.True(t, out.Summary.TotalExpenses.Equal(d("1850")))
	assert.True(t, out.Summary.TotalBudget.Equal(d("2000")))
	assert.Equal(t, 93, out.BudgetUsedPercent)
	assert.Equal(t, valueobject.BandWarning, out.Band)

	require.Len(t, out.Summary.CategoryBreakdown, 3)
	assert.Equal(t, entity.CategoryHousing, out.Summary.CategoryBreakdown[0].Category)
	assert.Equal(t, 65, out.Summary.CategoryBreakdown[0].Percentage)
	assert.Equal(t, entity.CategoryFood, out.Summary.CategoryBreakdown[1].Category)
	assert.Equal(t, 27, out.Summary.CategoryBreakdown[1].Percentage)
	assert.Equal(t, entity.CategoryTransportation, out.Summary.CategoryBreakdown[2].Category)
	assert.Equal(t, 8, out.Summary.CategoryBreakdown[2].Percentage)

	require.Len(t, out.Categories, 3)
	assert.Equal(t, 100, out.Categories[0].BudgetPercent)
	assert.Equal(t, 125, out.Categories[1].BudgetPercent)
	assert.Equal(t, valueobject.BandOverBudget, out.Categories[1].Band)
	assert.Nil(t, out.Categories[2].Budget)
	assert.Equal(t, 0, out.Categories[2].BudgetPercent)
}

func TestGetReportUseCase_Errors(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		uc := NewGetReportUseCase(&stubExpenses{}, &stubBudgets{})
		_, err := uc.Execute(context.Background(), GetReportInput{Period: valueobject.NewPeriod(2023, 13)})
		require.ErrorIs(t, err, domainerror.ErrInvalidReportPeriod)
	})

	t.Run("source failure", func(t *testing.T) {
		sourceErr := errors.New("unreachable")
		uc := NewGetReportUseCase(&stubExpenses{err: sourceErr}, &stubBudgets{})
		_, err := uc.Execute(context.Background(), GetReportInput{Period: valueobject.NewPeriod(2023, 6)})
		require.ErrorIs(t, err, sourceErr)
	})
}

func TestExportReportUseCase_Execute(t *testing.T) {
	period, expenses, budgets := reportFixture()
	uc := NewExportReportUseCase(NewGetReportUseCase(expenses, budgets))

	var buf bytes.Buffer
	input := ExportReportInput{GetReportInput: GetReportInput{Period: period}, Format: "CSV"}
	require.NoError(t, uc.Execute(context.Background(), input, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Period,June 2023", lines[0])
	assert.Equal(t, "Total Expenses,1850.00", lines[1])
	assert.Equal(t, "Housing,1200.00,65,1200.00,100", lines[6])
	assert.Equal(t, "Transportation,150.00,8,,0", lines[8])
	assert.Equal(t, "expense-report-2023-06.csv", input.Filename())

	err := uc.Execute(context.Background(), ExportReportInput{GetReportInput: input.GetReportInput, Format: "pdf"}, &buf)
	require.ErrorIs(t, err, domainerror.ErrUnsupportedExportFormat)
}
