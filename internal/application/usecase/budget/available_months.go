// Package budget contains budget allocation use cases.
package budget

import (
	"time"

	"github.com/expense-tracker/web/internal/domain/valueobject"
)

// availableMonthCount is the current month plus the next three.
const availableMonthCount = 4

// MonthOption is a selectable budgeting period.
type MonthOption struct {
	Value valueobject.Period
	Label string
}

// AvailableMonths returns the periods a budget can be set up for, starting
// with the month containing now.
func AvailableMonths(now time.Time) []MonthOption {
	current := valueobject.PeriodOf(now)
	options := make([]MonthOption, 0, availableMonthCount)
	for i := 0; i < availableMonthCount; i++ {
		period := current.AddMonths(i)
		options = append(options, MonthOption{
			Value: period,
			Label: period.Label(),
		})
	}
	return options
}
