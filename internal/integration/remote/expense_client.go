// Package remote implements the data-source adapters against the remote
// expense, budget and auth API.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

const expensesPath = "/api/expenses"

// expenseClient implements the adapter.ExpenseSource interface.
type expenseClient struct {
	client *Client
}

// NewExpenseClient creates a new remote expense source.
func NewExpenseClient(client *Client) adapter.ExpenseSource {
	return &expenseClient{
		client: client,
	}
}

// List retrieves every expense of the current user.
func (c *expenseClient) List(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return c.list(ctx, expensesPath, nil)
}

// Get retrieves a single expense.
func (c *expenseClient) Get(ctx context.Context, id int64) (*entity.ExpenseRecord, error) {
	var model ExpenseModel
	if err := do(ctx, c.client, http.MethodGet, expensePath(id), nil, nil, &model); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", domainerror.ErrExpenseNotFound, err)
		}
		return nil, err
	}
	return model.ToEntity()
}

// ListByCategory retrieves the expenses of one category.
func (c *expenseClient) ListByCategory(ctx context.Context, category entity.CategoryName) ([]*entity.ExpenseRecord, error) {
	return c.list(ctx, expensesPath+"/category/"+url.PathEscape(string(category)), nil)
}

// ListByDateRange retrieves expenses dated within [start, end].
func (c *expenseClient) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseRecord, error) {
	query := url.Values{}
	query.Set("startDate", start.UTC().Format(time.RFC3339))
	query.Set("endDate", end.UTC().Format(time.RFC3339))
	return c.list(ctx, expensesPath+"/date-range", query)
}

// ListToday retrieves the expenses dated today.
func (c *expenseClient) ListToday(ctx context.Context) ([]*entity.ExpenseRecord, error) {
	return c.list(ctx, expensesPath+"/today", nil)
}

// Create stores a new expense.
func (c *expenseClient) Create(ctx context.Context, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	var model ExpenseModel
	if err := do(ctx, c.client, http.MethodPost, expensesPath, nil, ExpenseFromEntity(expense), &model); err != nil {
		return nil, err
	}
	return model.ToEntity()
}

// Update replaces an expense.
func (c *expenseClient) Update(ctx context.Context, id int64, expense *entity.ExpenseRecord) (*entity.ExpenseRecord, error) {
	var model ExpenseModel
	if err := do(ctx, c.client, http.MethodPut, expensePath(id), nil, ExpenseFromEntity(expense), &model); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", domainerror.ErrExpenseNotFound, err)
		}
		return nil, err
	}
	return model.ToEntity()
}

// Delete removes an expense.
func (c *expenseClient) Delete(ctx context.Context, id int64) error {
	if err := do[struct{}](ctx, c.client, http.MethodDelete, expensePath(id), nil, nil, nil); err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: %w", domainerror.ErrExpenseNotFound, err)
		}
		return err
	}
	return nil
}

func (c *expenseClient) list(ctx context.Context, path string, query url.Values) ([]*entity.ExpenseRecord, error) {
	var models []ExpenseModel
	if err := do(ctx, c.client, http.MethodGet, path, query, nil, &models); err != nil {
		return nil, err
	}

	records := make([]*entity.ExpenseRecord, 0, len(models))
	for i := range models {
		record, err := models[i].ToEntity()
		if err != nil {
			return nil, domainerror.NewRemoteError(http.StatusOK, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteMalformed, err))
		}
		records = append(records, record)
	}
	return records, nil
}

func expensePath(id int64) string {
	return expensesPath + "/" + strconv.FormatInt(id, 10)
}
