// Package fixture provides in-process data sources seeded with sample data,
// used when no remote API is configured.
package fixture

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// DemoUserID owns the seeded records.
const DemoUserID int64 = 1

// Store keeps expenses and budget allocations in memory.
type Store struct {
	mu       sync.Mutex
	clock    adapter.Clock
	nextID   int64
	expenses []entity.ExpenseRecord
	budgets  []entity.BudgetAllocation
}

// New creates an empty store.
func New(clock adapter.Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{clock: clock}
}

// NewSeeded creates a store holding the sample expenses of the last few
// days and a budget for the current month.
func NewSeeded(clock adapter.Clock) *Store {
	s := New(clock)
	now := s.clock()

	seedExpenses := []struct {
		amount      string
		category    entity.CategoryName
		description string
		daysAgo     int
	}{
		{"45.99", entity.CategoryFood, "Grocery shopping", 0},
		{"25.50", entity.CategoryTransportation, "Gas", 1},
		{"120.00", entity.CategoryUtilities, "Electricity bill", 2},
		{"35.75", entity.CategoryEntertainment, "Movie tickets", 3},
		{"1200.00", entity.CategoryHousing, "Rent", 5},
	}
	for _, seed := range seedExpenses {
		s.insertExpense(*entity.NewExpenseRecord(
			DemoUserID,
			decimal.RequireFromString(seed.amount),
			seed.description,
			seed.category,
			now.AddDate(0, 0, -seed.daysAgo),
		))
	}

	period := valueobject.PeriodOf(now)
	s.insertBudget(*entity.NewTotalBudget(DemoUserID, period, decimal.NewFromInt(2000)))
	for _, seed := range []struct {
		category entity.CategoryName
		amount   int64
	}{
		{entity.CategoryFood, 500},
		{entity.CategoryTransportation, 300},
		{entity.CategoryHousing, 800},
		{entity.CategoryEntertainment, 200},
	} {
		s.insertBudget(*entity.NewCategoryBudget(DemoUserID, period, seed.category, decimal.NewFromInt(seed.amount)))
	}

	return s
}

// Expenses returns the store as an expense source.
func (s *Store) Expenses() adapter.ExpenseSource {
	return &expenseSource{store: s}
}

// Budgets returns the store as a budget source.
func (s *Store) Budgets() adapter.BudgetSource {
	return &budgetSource{store: s}
}

// insertExpense assigns an ID and stores the record. Callers hold mu once
// the store is shared.
func (s *Store) insertExpense(e entity.ExpenseRecord) entity.ExpenseRecord {
	s.nextID++
	id := s.nextID
	e.ID = &id
	e.Tags = append([]string(nil), e.Tags...)
	s.expenses = append(s.expenses, e)
	return e
}

func (s *Store) insertBudget(b entity.BudgetAllocation) entity.BudgetAllocation {
	s.nextID++
	id := s.nextID
	b.ID = &id
	if b.Category != nil {
		category := *b.Category
		b.Category = &category
	}
	s.budgets = append(s.budgets, b)
	return b
}

// selectExpenses copies the records matching keep, newest first.
func (s *Store) selectExpenses(keep func(e *entity.ExpenseRecord) bool) []*entity.ExpenseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.ExpenseRecord, 0, len(s.expenses))
	for i := range s.expenses {
		if keep(&s.expenses[i]) {
			out = append(out, copyExpense(s.expenses[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (s *Store) selectBudgets(keep func(b *entity.BudgetAllocation) bool) []*entity.BudgetAllocation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.BudgetAllocation, 0, len(s.budgets))
	for i := range s.budgets {
		if keep(&s.budgets[i]) {
			out = append(out, copyBudget(s.budgets[i]))
		}
	}
	return out
}

func copyExpense(e entity.ExpenseRecord) *entity.ExpenseRecord {
	if e.ID != nil {
		id := *e.ID
		e.ID = &id
	}
	e.Tags = append([]string(nil), e.Tags...)
	return &e
}

func copyBudget(b entity.BudgetAllocation) *entity.BudgetAllocation {
	if b.ID != nil {
		id := *b.ID
		b.ID = &id
	}
	if b.Category != nil {
		category := *b.Category
		b.Category = &category
	}
	return &b
}
