// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// DateLayout is the date format used by expense requests and responses.
const DateLayout = "2006-01-02"

// ExpenseRequest represents the request body for creating or replacing an expense.
// Amount accepts both JSON numbers and strings.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Tags        []string        `json:"tags,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           *int64   `json:"id,omitempty"`
	Amount       string   `json:"amount"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	CategoryIcon string   `json:"category_icon"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts a domain ExpenseRecord to an ExpenseResponse DTO.
func ToExpenseResponse(record *entity.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:           record.ID,
		Amount:       record.Amount.StringFixed(2),
		Description:  record.Description,
		Category:     string(record.Category),
		CategoryIcon: record.Category.Icon(),
		Date:         record.Date.Format(DateLayout),
		Tags:         record.Tags,
	}
}

// ToExpenseResponses converts a list of records, preserving order.
func ToExpenseResponses(records []*entity.ExpenseRecord) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(records))
	for i, record := range records {
		responses[i] = ToExpenseResponse(record)
	}
	return responses
}
