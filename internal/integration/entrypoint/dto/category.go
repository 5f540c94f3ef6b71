// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/web/internal/application/usecase/category"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ExpenseCount int    `json:"expense_count"`
	PeriodTotal  string `json:"period_total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryListResponse converts the use case output to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = CategoryResponse{
			Name:         string(cat.Name),
			Icon:         cat.Icon,
			ExpenseCount: cat.ExpenseCount,
			PeriodTotal:  cat.PeriodTotal.StringFixed(2),
		}
	}
	return CategoryListResponse{Categories: categories}
}
