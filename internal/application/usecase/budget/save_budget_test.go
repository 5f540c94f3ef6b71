package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

func TestSaveBudgetUseCase_Execute(t *testing.T) {
	period := valueobject.NewPeriod(2024, time.March)

	t.Run("creates total and positive category allocations", func(t *testing.T) {
		source := &fakeBudgetSource{}
		uc := NewSaveBudgetUseCase(source)

		out, err := uc.Execute(context.Background(), SaveBudgetInput{
			UserID: 7,
			Period: period,
			Total:  d("2000"),
			Allocations: map[entity.CategoryName]decimal.Decimal{
				entity.CategoryFood:    d("500"),
				entity.CategoryHousing: d("800"),
				entity.CategoryOther:   decimal.Zero,
			},
		})
		require.NoError(t, err)

		require.Len(t, source.created, 3)
		assert.True(t, source.created[0].IsTotal())
		assert.Equal(t, entity.CategoryFood, *source.created[1].Category)
		assert.Equal(t, entity.CategoryHousing, *source.created[2].Category)
		assert.Empty(t, source.deleted)
		assert.Equal(t, 65, out.Allocation.AllocationPercent)
		assert.Len(t, out.Categories, 2)
	})

	t.Run("updates existing allocations and deletes zeroed ones", func(t *testing.T) {
		food := entity.CategoryFood
		other := entity.CategoryOther
		source := &fakeBudgetSource{
			allocations: []*entity.BudgetAllocation{
				{ID: int64Ptr(1), Period: period, Amount: d("1500")},
				{ID: int64Ptr(2), Period: period, Amount: d("400"), Category: &food},
				{ID: int64Ptr(3), Period: period, Amount: d("100"), Category: &other},
			},
		}
		uc := NewSaveBudgetUseCase(source)

		_, err := uc.Execute(context.Background(), SaveBudgetInput{
			Period: period,
			Total:  d("2000"),
			Allocations: map[entity.CategoryName]decimal.Decimal{
				entity.CategoryFood:  d("500"),
				entity.CategoryOther: decimal.Zero,
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 2}, source.updated)
		assert.Equal(t, []int64{3}, source.deleted)
		assert.Empty(t, source.created)
	})

	t.Run("unchanged category allocation is not rewritten", func(t *testing.T) {
		food := entity.CategoryFood
		source := &fakeBudgetSource{
			allocations: []*entity.BudgetAllocation{
				{ID: int64Ptr(1), Period: period, Amount: d("2000")},
				{ID: int64Ptr(2), Period: period, Amount: d("500"), Category: &food},
			},
		}
		uc := NewSaveBudgetUseCase(source)

		_, err := uc.Execute(context.Background(), SaveBudgetInput{
			Period:      period,
			Total:       d("2000"),
			Allocations: map[entity.CategoryName]decimal.Decimal{entity.CategoryFood: d("500.00")},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, source.updated)
	})

	t.Run("over allocation is rejected before any call", func(t *testing.T) {
		source := &fakeBudgetSource{listErr: errors.New("must not be called")}
		uc := NewSaveBudgetUseCase(source)

		_, err := uc.Execute(context.Background(), SaveBudgetInput{
			Period: period,
			Total:  d("2000"),
			Allocations: map[entity.CategoryName]decimal.Decimal{
				entity.CategoryHousing: d("1500"),
				entity.CategoryFood:    d("600"),
			},
		})
		require.ErrorIs(t, err, domainerror.ErrOverAllocated)
		assert.Empty(t, source.created)
		assert.Empty(t, source.updated)
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := NewSaveBudgetUseCase(&fakeBudgetSource{})

		_, err := uc.Execute(context.Background(), SaveBudgetInput{Total: d("100")})
		require.ErrorIs(t, err, domainerror.ErrInvalidPeriod)
	})

	t.Run("source failure is wrapped", func(t *testing.T) {
		sourceErr := errors.New("boom")
		uc := NewSaveBudgetUseCase(&fakeBudgetSource{listErr: sourceErr})

		_, err := uc.Execute(context.Background(), SaveBudgetInput{Period: period, Total: d("100")})
		require.ErrorIs(t, err, sourceErr)
	})
}

func TestGetBudgetFormUseCase_Execute(t *testing.T) {
	period := valueobject.NewPeriod(2024, time.March)
	food := entity.CategoryFood

	t.Run("splits total from categories and computes status", func(t *testing.T) {
		budgets := &fakeBudgetSource{
			allocations: []*entity.BudgetAllocation{
				{ID: int64Ptr(1), Period: period, Amount: d("2000")},
				{ID: int64Ptr(2), Period: period, Amount: d("500"), Category: &food},
				{ID: int64Ptr(9), Period: period.AddMonths(1), Amount: d("10")},
			},
		}
		expenses := &fakeExpenseSource{
			expenses: []*entity.ExpenseRecord{
				{Amount: d("600"), Category: entity.CategoryFood, Date: time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)},
				{Amount: d("100"), Category: entity.CategoryHousing, Date: time.Date(2024, 3, 6, 12, 0, 0, 0, time.Local)},
				{Amount: d("999"), Category: entity.CategoryFood, Date: time.Date(2024, 4, 1, 12, 0, 0, 0, time.Local)},
			},
		}
		uc := NewGetBudgetFormUseCase(budgets, expenses)

		out, err := uc.Execute(context.Background(), GetBudgetFormInput{Period: period})
		require.NoError(t, err)

		assert.Equal(t, int64(1), *out.Total.ID)
		assert.True(t, out.Allocations[entity.CategoryFood].Equal(d("500")))
		assert.Equal(t, 25, out.Allocation.AllocationPercent)

		require.Len(t, out.Statuses, 2)
		assert.True(t, out.Statuses[0].Spent.Equal(d("700")))
		assert.True(t, out.Statuses[0].Remaining.Equal(d("1300")))
		assert.False(t, out.Statuses[0].Overspent)
		assert.True(t, out.Statuses[1].Spent.Equal(d("600")))
		assert.True(t, out.Statuses[1].Remaining.Equal(d("-100")))
		assert.True(t, out.Statuses[1].Overspent)
	})

	t.Run("missing total budget", func(t *testing.T) {
		budgets := &fakeBudgetSource{
			allocations: []*entity.BudgetAllocation{
				{ID: int64Ptr(2), Period: period, Amount: d("500"), Category: &food},
			},
		}
		uc := NewGetBudgetFormUseCase(budgets, &fakeExpenseSource{})

		_, err := uc.Execute(context.Background(), GetBudgetFormInput{Period: period})
		require.ErrorIs(t, err, domainerror.ErrTotalBudgetNotFound)
	})
}

func TestAvailableMonths(t *testing.T) {
	now := time.Date(2023, time.November, 15, 10, 0, 0, 0, time.UTC)

	months := AvailableMonths(now)

	require.Len(t, months, 4)
	assert.Equal(t, "2023-11", months[0].Value.String())
	assert.Equal(t, "November 2023", months[0].Label)
	assert.Equal(t, "2024-02", months[3].Value.String())
	assert.Equal(t, "February 2024", months[3].Label)
}
