// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/usecase/budget"
	"github.com/expense-tracker/web/internal/domain/entity"
)

// AllocationPreviewRequest represents the request body for an allocation preview.
type AllocationPreviewRequest struct {
	Total       decimal.Decimal            `json:"total"`
	Allocations map[string]decimal.Decimal `json:"allocations"`
}

// SaveBudgetRequest represents the request body for saving a period's budget.
type SaveBudgetRequest struct {
	Period      string                     `json:"period" binding:"required"`
	BudgetID    *int64                     `json:"budget_id,omitempty"`
	Total       decimal.Decimal            `json:"total"`
	Allocations map[string]decimal.Decimal `json:"allocations"`
}

// MonthOptionResponse represents a selectable budgeting month.
type MonthOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MonthListResponse represents the response for listing budgeting months.
type MonthListResponse struct {
	Months []MonthOptionResponse `json:"months"`
}

// AllocationResponse represents the reconciliation of a total against its categories.
type AllocationResponse struct {
	Total             string `json:"total"`
	AllocatedSum      string `json:"allocated_sum"`
	AllocationPercent int    `json:"allocation_percent"`
	OverAllocated     bool   `json:"over_allocated"`
}

// BudgetResponse represents a stored budget allocation.
type BudgetResponse struct {
	ID       *int64  `json:"id,omitempty"`
	Period   string  `json:"period"`
	Amount   string  `json:"amount"`
	Category *string `json:"category"`
}

// BudgetStatusResponse represents an allocation with its spending figures.
type BudgetStatusResponse struct {
	BudgetResponse
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
	Overspent bool   `json:"overspent"`
}

// BudgetFormResponse represents a period's budget form.
type BudgetFormResponse struct {
	Period      string                 `json:"period"`
	Label       string                 `json:"label"`
	HasBudget   bool                   `json:"has_budget"`
	BudgetID    *int64                 `json:"budget_id,omitempty"`
	Total       string                 `json:"total"`
	Allocations map[string]string      `json:"allocations"`
	Allocation  AllocationResponse     `json:"allocation"`
	Statuses    []BudgetStatusResponse `json:"statuses"`
}

// SaveBudgetResponse represents the allocations stored by a save.
type SaveBudgetResponse struct {
	Total      BudgetResponse     `json:"total"`
	Categories []BudgetResponse   `json:"categories"`
	Allocation AllocationResponse `json:"allocation"`
}

// ToMonthListResponse converts budgeting month options to a MonthListResponse DTO.
func ToMonthListResponse(options []budget.MonthOption) MonthListResponse {
	months := make([]MonthOptionResponse, len(options))
	for i, option := range options {
		months[i] = MonthOptionResponse{
			Value: option.Value.String(),
			Label: option.Label,
		}
	}
	return MonthListResponse{Months: months}
}

// ToAllocationResponse converts an Allocation to an AllocationResponse DTO.
func ToAllocationResponse(allocation budget.Allocation) AllocationResponse {
	return AllocationResponse{
		Total:             allocation.Total.StringFixed(2),
		AllocatedSum:      allocation.AllocatedSum.StringFixed(2),
		AllocationPercent: allocation.AllocationPercent,
		OverAllocated:     allocation.OverAllocated,
	}
}

// ToBudgetResponse converts a domain BudgetAllocation to a BudgetResponse DTO.
func ToBudgetResponse(allocation *entity.BudgetAllocation) BudgetResponse {
	if allocation == nil {
		return BudgetResponse{}
	}
	response := BudgetResponse{
		ID:     allocation.ID,
		Period: allocation.Period.String(),
		Amount: allocation.Amount.StringFixed(2),
	}
	if !allocation.IsTotal() {
		category := string(*allocation.Category)
		response.Category = &category
	}
	return response
}

// ToBudgetFormResponse converts the budget form output to a BudgetFormResponse DTO.
func ToBudgetFormResponse(output *budget.GetBudgetFormOutput) BudgetFormResponse {
	allocations := make(map[string]string, len(output.Allocations))
	for category, amount := range output.Allocations {
		allocations[string(category)] = amount.StringFixed(2)
	}

	statuses := make([]BudgetStatusResponse, len(output.Statuses))
	for i, status := range output.Statuses {
		statuses[i] = BudgetStatusResponse{
			BudgetResponse: ToBudgetResponse(status.Allocation),
			Spent:          status.Spent.StringFixed(2),
			Remaining:      status.Remaining.StringFixed(2),
			Overspent:      status.Overspent,
		}
	}

	response := BudgetFormResponse{
		Period:      output.Period.String(),
		Label:       output.Period.Label(),
		Total:       decimal.Zero.StringFixed(2),
		Allocations: allocations,
		Allocation:  ToAllocationResponse(output.Allocation),
		Statuses:    statuses,
	}
	if output.Total != nil {
		response.HasBudget = true
		response.BudgetID = output.Total.ID
		response.Total = output.Total.Amount.StringFixed(2)
	}
	return response
}

// ToSaveBudgetResponse converts the save output to a SaveBudgetResponse DTO.
func ToSaveBudgetResponse(output *budget.SaveBudgetOutput) SaveBudgetResponse {
	categories := make([]BudgetResponse, len(output.Categories))
	for i, allocation := range output.Categories {
		categories[i] = ToBudgetResponse(allocation)
	}
	return SaveBudgetResponse{
		Total:      ToBudgetResponse(output.Total),
		Categories: categories,
		Allocation: ToAllocationResponse(output.Allocation),
	}
}
