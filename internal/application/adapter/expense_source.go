// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// ExpenseSource defines the data-source capability for expense records.
// Implementations resolve to records or to an error carrying the reason.
type ExpenseSource interface {
	// List returns every expense of the current user.
	List(ctx context.Context) ([]*entity.ExpenseRecord, error)

	// Get returns a single expense by its identifier.
	Get(ctx context.Context, id int64) (*entity.ExpenseRecord, error)

	// ListByCategory returns the expenses of one category.
	ListByCategory(ctx context.Context, category entity.CategoryName) ([]*entity.ExpenseRecord, error)

	// ListByDateRange returns expenses dated within [start, end].
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseRecord, error)

	// ListToday returns the expenses dated today.
	ListToday(ctx context.Context) ([]*entity.ExpenseRecord, error)

	// Create stores a new expense and returns it with its identifier.
	Create(ctx context.Context, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error)

	// Update replaces the expense with the given identifier.
	Update(ctx context.Context, id int64, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error)

	// Delete removes the expense with the given identifier.
	Delete(ctx context.Context, id int64) error
}
