// Package fixture provides in-process data sources seeded with sample data,
// used when no remote API is configured.
package fixture

import (
	"context"
	"time"

	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

type expenseSource struct {
	store *Store
}

func (s *expenseSource) List(_ context.Context) ([]*entity.ExpenseRecord, error) {
	return s.store.selectExpenses(func(*entity.ExpenseRecord) bool { return true }), nil
}

func (s *expenseSource) Get(_ context.Context, id int64) (*entity.ExpenseRecord, error) {
	found := s.store.selectExpenses(func(e *entity.ExpenseRecord) bool { return *e.ID == id })
	if len(found) == 0 {
		return nil, domainerror.ErrExpenseNotFound
	}
	return found[0], nil
}

func (s *expenseSource) ListByCategory(_ context.Context, category entity.CategoryName) ([]*entity.ExpenseRecord, error) {
	return s.store.selectExpenses(func(e *entity.ExpenseRecord) bool { return e.Category == category }), nil
}

func (s *expenseSource) ListByDateRange(_ context.Context, start, end time.Time) ([]*entity.ExpenseRecord, error) {
	return s.store.selectExpenses(func(e *entity.ExpenseRecord) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	}), nil
}

func (s *expenseSource) ListToday(_ context.Context) ([]*entity.ExpenseRecord, error) {
	y, m, d := s.store.clock().Date()
	return s.store.selectExpenses(func(e *entity.ExpenseRecord) bool {
		ey, em, ed := e.Date.Date()
		return ey == y && em == m && ed == d
	}), nil
}

func (s *expenseSource) Create(_ context.Context, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	stored := s.store.insertExpense(*expense)
	return copyExpense(stored), nil
}

func (s *expenseSource) Update(_ context.Context, id int64, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.expenses {
		if *s.store.expenses[i].ID != id {
			continue
		}
		replacement := *copyExpense(*expense)
		replacement.ID = &id
		s.store.expenses[i] = replacement
		return copyExpense(replacement), nil
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (s *expenseSource) Delete(_ context.Context, id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for i := range s.store.expenses {
		if *s.store.expenses[i].ID == id {
			s.store.expenses = append(s.store.expenses[:i], s.store.expenses[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrExpenseNotFound
}
