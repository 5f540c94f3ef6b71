// Package remote implements the data-source adapters against the remote
// expense, budget and auth API.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

const budgetsPath = "/api/budgets"

// budgetClient implements the adapter.BudgetSource interface.
type budgetClient struct {
	client *Client
}

// NewBudgetClient creates a new remote budget source.
func NewBudgetClient(client *Client) adapter.BudgetSource {
	return &budgetClient{
		client: client,
	}
}

// List retrieves every allocation of the current user.
func (c *budgetClient) List(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return c.list(ctx, budgetsPath)
}

// ListCurrentMonth retrieves the allocations of the current month.
func (c *budgetClient) ListCurrentMonth(ctx context.Context) ([]*entity.BudgetAllocation, error) {
	return c.list(ctx, budgetsPath+"/current-month")
}

// GetByCategory retrieves the current allocation of a category.
func (c *budgetClient) GetByCategory(ctx context.Context, category entity.CategoryName) (*entity.BudgetAllocation, error) {
	var model BudgetModel
	if err := do(ctx, c.client, http.MethodGet, budgetsPath+"/category/"+url.PathEscape(string(category)), nil, nil, &model); err != nil {
		return nil, err
	}
	return model.ToEntity()
}

// ListByPeriod retrieves the allocations of a period.
func (c *budgetClient) ListByPeriod(ctx context.Context, period valueobject.Period) ([]*entity.BudgetAllocation, error) {
	return c.list(ctx, fmt.Sprintf("%s/%d/%d", budgetsPath, period.Year, int(period.Month)))
}

// Create stores a new allocation.
func (c *budgetClient) Create(ctx context.Context, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	var model BudgetModel
	if err := do(ctx, c.client, http.MethodPost, budgetsPath, nil, BudgetFromEntity(budget), &model); err != nil {
		return nil, err
	}
	return model.ToEntity()
}

// Update replaces an allocation.
func (c *budgetClient) Update(ctx context.Context, id int64, budget *entity.BudgetAllocation) (*entity.BudgetAllocation, error) {
	var model BudgetModel
	if err := do(ctx, c.client, http.MethodPut, budgetPath(id), nil, BudgetFromEntity(budget), &model); err != nil {
		return nil, err
	}
	return model.ToEntity()
}

// Delete removes an allocation.
func (c *budgetClient) Delete(ctx context.Context, id int64) error {
	return do[struct{}](ctx, c.client, http.MethodDelete, budgetPath(id), nil, nil, nil)
}

func (c *budgetClient) list(ctx context.Context, path string) ([]*entity.BudgetAllocation, error) {
	var models []BudgetModel
	if err := do(ctx, c.client, http.MethodGet, path, nil, nil, &models); err != nil {
		return nil, err
	}

	allocations := make([]*entity.BudgetAllocation, 0, len(models))
	for i := range models {
		allocation, err := models[i].ToEntity()
		if err != nil {
			return nil, domainerror.NewRemoteError(http.StatusOK, "", fmt.Errorf("%w: %v", domainerror.ErrRemoteMalformed, err))
		}
		allocations = append(allocations, allocation)
	}
	return allocations, nil
}

func budgetPath(id int64) string {
	return budgetsPath + "/" + strconv.FormatInt(id, 10)
}
