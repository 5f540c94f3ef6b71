// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/web/internal/application/usecase/report"
)

// ReportResponse represents a monthly report.
type ReportResponse struct {
	Period            string                   `json:"period"`
	Label             string                   `json:"label"`
	TotalExpenses     string                   `json:"total_expenses"`
	TotalBudget       string                   `json:"total_budget"`
	BudgetUsedPercent int                      `json:"budget_used_percent"`
	Band              string                   `json:"band"`
	Categories        []CategoryReportResponse `json:"categories"`
}

// CategoryReportResponse represents one category row of a report.
type CategoryReportResponse struct {
	Category      string  `json:"category"`
	Icon          string  `json:"icon"`
	Amount        string  `json:"amount"`
	Percentage    int     `json:"percentage"`
	Budget        *string `json:"budget"`
	BudgetPercent int     `json:"budget_percent"`
	Band          string  `json:"band"`
}

// YearListResponse represents the years a report can be requested for.
type YearListResponse struct {
	Years []int `json:"years"`
}

// ToReportResponse converts the report output to a ReportResponse DTO.
func ToReportResponse(output *report.GetReportOutput) ReportResponse {
	categories := make([]CategoryReportResponse, len(output.Categories))
	for i, row := range output.Categories {
		categories[i] = CategoryReportResponse{
			Category:      string(row.Category),
			Icon:          row.Icon,
			Amount:        row.Amount.StringFixed(2),
			Percentage:    row.Percentage,
			BudgetPercent: row.BudgetPercent,
			Band:          string(row.Band),
		}
		if row.Budget != nil {
			budget := row.Budget.StringFixed(2)
			categories[i].Budget = &budget
		}
	}

	summary := output.Summary
	return ReportResponse{
		Period:            summary.Period.String(),
		Label:             summary.Period.Label(),
		TotalExpenses:     summary.TotalExpenses.StringFixed(2),
		TotalBudget:       summary.TotalBudget.StringFixed(2),
		BudgetUsedPercent: output.BudgetUsedPercent,
		Band:              string(output.Band),
		Categories:        categories,
	}
}
