package mock

import (
	"strings"
	"time"
)

// User is an account of the fake remote API.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

// Expense is a stored expense. Amount keeps the decimal text as received.
type Expense struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"index;not null"`
	Amount      string `gorm:"not null"`
	Description string
	Category    string    `gorm:"index"`
	Date        time.Time `gorm:"index"`
	Tags        string
}

func (Expense) TableName() string {
	return "expenses"
}

// TagList splits the stored tags.
func (e *Expense) TagList() []string {
	if e.Tags == "" {
		return nil
	}
	return strings.Split(e.Tags, ",")
}

// Budget is a stored allocation. A nil Category is the month's total.
type Budget struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	MonthYear string `gorm:"index;not null"`
	Amount    string `gorm:"not null"`
	Category  *string
}

func (Budget) TableName() string {
	return "budgets"
}

// Models lists every table of the fake remote API.
func Models() []any {
	return []any{&User{}, &Expense{}, &Budget{}}
}
