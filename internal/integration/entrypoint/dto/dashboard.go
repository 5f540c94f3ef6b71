// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/web/internal/application/usecase/dashboard"
)

// DashboardResponse represents the dashboard view model.
type DashboardResponse struct {
	Expenses          []ExpenseResponse    `json:"expenses"`
	Category          string               `json:"category,omitempty"`
	DateFilter        string               `json:"date_filter"`
	DateRangeLabel    string               `json:"date_range_label"`
	TotalSpent        string               `json:"total_spent"`
	TopCategory       *TopCategoryResponse `json:"top_category"`
	MonthlyBudget     string               `json:"monthly_budget"`
	RemainingBudget   string               `json:"remaining_budget"`
	BudgetUsedPercent int                  `json:"budget_used_percent"`
	Band              string               `json:"band"`
	MonthlySeries     []MonthlyBarResponse `json:"monthly_series"`
}

// TopCategoryResponse represents the category with the largest spend.
type TopCategoryResponse struct {
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Amount   string `json:"amount"`
}

// MonthlyBarResponse represents one bar of the monthly chart.
type MonthlyBarResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
	Height int    `json:"height"`
}

// ToDashboardResponse converts the dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	series := make([]MonthlyBarResponse, len(output.MonthlySeries))
	for i, bar := range output.MonthlySeries {
		series[i] = MonthlyBarResponse{
			Label:  bar.Label,
			Amount: bar.Amount.StringFixed(2),
			Height: bar.Height,
		}
	}

	response := DashboardResponse{
		Expenses:          ToExpenseResponses(output.Expenses),
		Category:          string(output.Category),
		DateFilter:        string(output.DateFilter),
		DateRangeLabel:    output.DateRangeLabel,
		TotalSpent:        output.TotalSpent.StringFixed(2),
		MonthlyBudget:     output.MonthlyBudget.StringFixed(2),
		RemainingBudget:   output.RemainingBudget.StringFixed(2),
		BudgetUsedPercent: output.BudgetUsedPercent,
		Band:              string(output.Band),
		MonthlySeries:     series,
	}
	if output.TopCategory != nil {
		response.TopCategory = &TopCategoryResponse{
			Category: string(output.TopCategory.Category),
			Icon:     output.TopCategory.Icon,
			Amount:   output.TopCategory.Amount.StringFixed(2),
		}
	}
	return response
}
