// Package fixture provides in-process data sources seeded with sample data,
// used when no remote API is configured.
package fixture

import (
	"context"
	"errors"

	"github.com/expense-tracker/web/internal/domain/entity"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// ErrBudgetNotFound is returned for unknown budget identifiers.
var ErrBudgetNotFound = errors.New("budget not found")

type budgetSource struct {
	store *Store
}

func (s *budgetSource) List(_ context.Context) ([]*entity.BudgetAllocation, error) {
	return s.store.selectBudgets(func(*entity.BudgetAllocation) bool { return true }), nil
}

func (s *budgetSource) ListCurrentMonth(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return s.ListByPeriod(ctx, valueobject.PeriodOf(s.store.clock()))
}

func (s *budgetSource) GetByCategory(_ context.Context, category entity.CategoryName) (*entity.BudgetAllocation, error) {
	current := valueobject.PeriodOf(s.store.clock())
	found := s.store.selectBudgets(func(b *entity.BudgetAllocation) bool {
		return b.Period == current && !b.IsTotal() && *b.Category == category
	})
	if len(found) == 0 {
		return nil, ErrBudgetNotFound
	}
	return found[0], nil
}

func (s *budgetSource) ListByPeriod(_ context.Context, period valueobject.Period) ([]*entity.BudgetAllocation, error) {
	return s.store.selectBudgets(func(b *entity.BudgetAllocation) bool { return b.Period == period }), nil
}

func (s *budgetSource) Create(_ context.Context, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	stored := s.store.insertBudget(*budget)
	return copyBudget(stored), nil
}

func (s *budgetSource) Update(_ context.Context, id int64, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.budgets {
		if *s.store.budgets[i].ID != id {
			continue
		}
		replacement := *copyBudget(*budget)
		replacement.ID = &id
		s.store.budgets[i] = replacement
		return copyBudget(replacement), nil
	}
	return nil, ErrBudgetNotFound
}

func (s *budgetSource) Delete(_ context.Context, id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.budgets {
		if *s.store.budgets[i].ID == id {
			s.store.budgets = append(s.store.budgets[:i], s.store.budgets[i+1:]...)
			return nil
		}
	}
	return ErrBudgetNotFound
}
