package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/expense"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
	"github.com/expense-tracker/web/internal/integration/session"
)

var now = time.Date(2024, time.June, 19, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestNewSeeded(t *testing.T) {
	store := NewSeeded(clock)
	ctx := context.Background()

	records, err := store.Expenses().List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Grocery shopping", records[0].Description)

	summary := expense.FilterAndSummarize(records, "", expense.DateFilterMonth, now)
	assert.Len(t, summary.Filtered, 5)
	assert.True(t, summary.TotalSpent.Equal(decimal.RequireFromString("1427.24")))
	assert.Equal(t, entity.CategoryHousing, summary.TopCategory.Category)

	budgets, err := store.Budgets().ListCurrentMonth(ctx)
	require.NoError(t, err)
	require.Len(t, budgets, 5)
	assert.True(t, budgets[0].IsTotal())
	assert.True(t, budgets[0].Amount.Equal(decimal.NewFromInt(2000)))

	today, err := store.Expenses().ListToday(ctx)
	require.NoError(t, err)
	assert.Len(t, today, 1)
}

func TestExpenseSource_CRUD(t *testing.T) {
	store := New(clock)
	source := store.Expenses()
	ctx := context.Background()

	created, err := source.Create(ctx, entity.NewExpenseRecord(1, decimal.NewFromInt(10), "Lunch", entity.CategoryFood, now))
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	created.Description = "mutated outside"
	got, err := source.Get(ctx, *created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Description)

	replacement := entity.NewExpenseRecord(1, decimal.NewFromInt(12), "Dinner", entity.CategoryFood, now)
	updated, err := source.Update(ctx, *created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", updated.Description)
	assert.Equal(t, *created.ID, *updated.ID)

	require.NoError(t, source.Delete(ctx, *created.ID))
	_, err = source.Get(ctx, *created.ID)
	require.ErrorIs(t, err, domainerror.ErrExpenseNotFound)
	require.ErrorIs(t, source.Delete(ctx, *created.ID), domainerror.ErrExpenseNotFound)
}

func TestBudgetSource_ByPeriod(t *testing.T) {
	store := NewSeeded(clock)
	source := store.Budgets()
	ctx := context.Background()
	next := valueobject.PeriodOf(now).AddMonths(1)

	_, err := source.Create(ctx, entity.NewTotalBudget(1, next, decimal.NewFromInt(900)))
	require.NoError(t, err)

	allocations, err := source.ListByPeriod(ctx, next)
	require.NoError(t, err)
	require.Len(t, allocations, 1)

	food, err := source.GetByCategory(ctx, entity.CategoryFood)
	require.NoError(t, err)
	assert.True(t, food.Amount.Equal(decimal.NewFromInt(500)))

	require.NoError(t, source.Delete(ctx, *allocations[0].ID))
	require.ErrorIs(t, source.Delete(ctx, *allocations[0].ID), ErrBudgetNotFound)
}

func TestAuthGateway(t *testing.T) {
	gateway, err := NewAuthGateway("fixture-secret", clock)
	require.NoError(t, err)
	ctx := context.Background()

	user, err := gateway.Login(ctx, adapter.Credentials{Username: "Demo", Password: DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, DemoUsername, user.Username)
	require.NotEmpty(t, user.Token)

	expiresAt, ok, err := session.NewTokenInspector().ExpiresAt(user.Token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, expiresAt.Equal(now.Add(24*time.Hour)))

	_, err = gateway.Login(ctx, adapter.Credentials{Username: "demo", Password: "wrong"})
	require.ErrorIs(t, err, domainerror.ErrRemoteUnauthorized)

	_, err = gateway.Register(ctx, adapter.Registration{Username: "DEMO", Password: "whatever"})
	require.ErrorIs(t, err, domainerror.ErrRemoteRejected)
}
