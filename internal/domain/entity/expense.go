// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord represents a single expense as held by the remote store.
type ExpenseRecord struct {
	ID          *int64 // Assigned by the remote store
	Amount      decimal.Decimal
	Description string
	Category    CategoryName
	Date        time.Time
	UserID      int64
	Tags        []string
}

// NewExpenseRecord creates an ExpenseRecord that has not been stored yet.
func NewExpenseRecord(
	userID int64,
	amount decimal.Decimal,
	description string,
	category CategoryName,
	date time.Time,
) *ExpenseRecord {
	return &ExpenseRecord{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		UserID:      userID,
	}
}

// HasID reports whether the record has been assigned an identifier.
func (e *ExpenseRecord) HasID() bool {
	return e.ID != nil
}
