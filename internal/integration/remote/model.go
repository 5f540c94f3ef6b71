// Package remote implements the data-source adapters against the remote
// expense, budget and auth API.
package remote

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// Date is a calendar date on the wire. It accepts RFC 3339 timestamps as
// well as plain dates, which are read in the local time zone.
type Date struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t.Local()
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// ExpenseModel is an expense as exchanged with the remote API.
type ExpenseModel struct {
	ID          *int64      `json:"id,omitempty"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        Date        `json:"date"`
	UserID      int64       `json:"userId"`
	Tags        []string    `json:"tags,omitempty"`
}

// ToEntity converts an ExpenseModel to a domain ExpenseRecord.
func (m *ExpenseModel) ToEntity() (*entity.ExpenseRecord, error) {
	amount, err := parseAmount(m.Amount)
	if err != nil {
		return nil, err
	}
	return &entity.ExpenseRecord{
		ID:          m.ID,
		Amount:      amount,
		Description: m.Description,
		Category:    categoryFromWire(m.Category),
		Date:        m.Date.Time,
		UserID:      m.UserID,
		Tags:        m.Tags,
	}, nil
}

// ExpenseFromEntity creates an ExpenseModel from a domain ExpenseRecord.
func ExpenseFromEntity(e *entity.ExpenseRecord) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Amount:      json.Number(e.Amount.String()),
		Description: e.Description,
		Category:    string(e.Category),
		Date:        Date{Time: e.Date},
		UserID:      e.UserID,
		Tags:        e.Tags,
	}
}

// BudgetModel is a budget allocation as exchanged with the remote API.
// A nil Category marks the total budget of the month.
type BudgetModel struct {
	ID        *int64             `json:"id,omitempty"`
	UserID    int64              `json:"userId"`
	MonthYear valueobject.Period `json:"monthYear"`
	Amount    json.Number        `json:"amount"`
	Category  *string            `json:"category"`
}

// ToEntity converts a BudgetModel to a domain BudgetAllocation.
func (m *BudgetModel) ToEntity() (*entity.BudgetAllocation, error) {
	amount, err := parseAmount(m.Amount)
	if err != nil {
		return nil, err
	}
	allocation := &entity.BudgetAllocation{
		ID:     m.ID,
		UserID: m.UserID,
		Period: m.MonthYear,
		Amount: amount,
	}
	if m.Category != nil && strings.TrimSpace(*m.Category) != "" {
		category := categoryFromWire(*m.Category)
		allocation.Category = &category
	}
	return allocation, nil
}

// BudgetFromEntity creates a BudgetModel from a domain BudgetAllocation.
func BudgetFromEntity(b *entity.BudgetAllocation) *BudgetModel {
	model := &BudgetModel{
		ID:        b.ID,
		UserID:    b.UserID,
		MonthYear: b.Period,
		Amount:    json.Number(b.Amount.String()),
	}
	if !b.IsTotal() {
		category := string(*b.Category)
		model.Category = &category
	}
	return model
}

// UserModel is the authenticated user returned by login and register.
type UserModel struct {
	ID        *int64   `json:"id,omitempty"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Role      string   `json:"role,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Token     string   `json:"token,omitempty"`
}

// ToEntity converts a UserModel to a domain User.
func (m *UserModel) ToEntity() *entity.User {
	role := m.Role
	if role == "" && len(m.Roles) > 0 {
		role = m.Roles[0]
	}
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      role,
		Token:     m.Token,
	}
}

// UserFromEntity creates a UserModel from a domain User.
func UserFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Token:     u.Token,
	}
}

func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", n, err)
	}
	return amount, nil
}

// categoryFromWire maps the remote spelling onto the closed set, keeping
// unknown names as they are.
func categoryFromWire(s string) entity.CategoryName {
	if category, ok := entity.ParseCategoryName(s); ok {
		return category
	}
	return entity.CategoryName(strings.TrimSpace(s))
}
