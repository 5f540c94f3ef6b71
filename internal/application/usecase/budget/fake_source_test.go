package budget

import (
	"context"
	"time"

	"github.com/expense-tracker/web/internal/domain/entity"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// fakeBudgetSource records every write it receives.
type fakeBudgetSource struct {
	allocations []*entity.BudgetAllocation
	nextID      int64
	listErr     error

	created []*entity.BudgetAllocation
	updated []int64
	deleted []int64
}

func (f *fakeBudgetSource) List(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return f.allocations, nil
}

func (f *fakeBudgetSource) ListCurrentMonth(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return f.ListByPeriod(ctx, valueobject.PeriodOf(time.Now()))
}

func (f *fakeBudgetSource) GetByCategory(ctx context.Context, category entity.CategoryName) (*entity.BudgetAllocation, error) {
	for _, a := range f.allocations {
		if !a.IsTotal() && *a.Category == category {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeBudgetSource) ListByPeriod(ctx context.Context, period valueobject.Period) ([]*entity.BudgetAllocation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.BudgetAllocation
	for _, a := range f.allocations {
		if a.Period == period {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeBudgetSource) Create(ctx context.Context, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	f.nextID++
	id := 1000 + f.nextID
	stored := *budget
	stored.ID = &id
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeBudgetSource) Update(ctx context.Context, id int64, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	f.updated = append(f.updated, id)
	stored := *budget
	stored.ID = &id
	return &stored, nil
}

func (f *fakeBudgetSource) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeExpenseSource struct {
	expenses []*entity.ExpenseRecord
}

func (f *fakeExpenseSource) List(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return f.expenses, nil
}

func (f *fakeExpenseSource) Get(ctx context.Context, id int64) (*entity.ExpenseRecord, error) {
	return nil, nil
}

func (f *fakeExpenseSource) ListByCategory(ctx context.Context, category entity.CategoryName) ([]*entity.ExpenseRecord, error) {
	return nil, nil
}

func (f *fakeExpenseSource) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseRecord, error) {
	var out []*entity.ExpenseRecord
	for _, e := range f.expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseSource) ListToday(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return nil, nil
}

func (f *fakeExpenseSource) Create(ctx context.Context, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	return expense, nil
}

func (f *fakeExpenseSource) Update(ctx context.Context, id int64, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	return expense, nil
}

func (f *fakeExpenseSource) Delete(ctx context.Context, id int64) error {
	return nil
}

func int64Ptr(v int64) *int64 {
	return &v
}
