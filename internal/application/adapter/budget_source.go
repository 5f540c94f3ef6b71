// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/web/internal/domain/entity"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// BudgetSource defines the data-source capability for budget allocations.
type BudgetSource interface {
	// List returns every allocation of the current user.
	List(ctx context.Context) ([]*entity.BudgetAllocation, error)

	// ListCurrentMonth returns the allocations of the current period.
	ListCurrentMonth(ctx context.Context) ([]*entity.BudgetAllocation, error)

	// GetByCategory returns the current allocation of a category.
	GetByCategory(ctx context.Context, category entity.CategoryName) (*entity.BudgetAllocation, error)

	// ListByPeriod returns the allocations of a period.
	ListByPeriod(ctx context.Context, period valueobject.Period) ([]*entity.BudgetAllocation, error)

	// Create stores a new allocation and returns it with its identifier.
	Create(ctx context.Context, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error)

	// Update replaces the allocation with the given identifier.
	Update(ctx context.Context, id int64, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error)

	// Delete removes the allocation with the given identifier.
	Delete(ctx context.Context, id int64) error
}
