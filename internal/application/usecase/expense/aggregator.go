// Package expense contains expense-related use cases.
package expense

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/domain/entity"
)

// DateFilter restricts records to a window ending now.
type DateFilter string

const (
	DateFilterToday DateFilter = "today"
	DateFilterWeek  DateFilter = "week"
	DateFilterMonth DateFilter = "month"
	DateFilterAll   DateFilter = "all"
)

// ParseDateFilter resolves a filter value. An empty value means all.
func ParseDateFilter(s string) (DateFilter, bool) {
	switch DateFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", DateFilterAll:
		return DateFilterAll, true
	case DateFilterToday:
		return DateFilterToday, true
	case DateFilterWeek:
		return DateFilterWeek, true
	case DateFilterMonth:
		return DateFilterMonth, true
	default:
		return "", false
	}
}

// Label returns the display label of the date window.
func (f DateFilter) Label() string {
	switch f {
	case DateFilterToday:
		return "Today"
	case DateFilterWeek:
		return "This Week"
	case DateFilterMonth:
		return "This Month"
	default:
		return "All Time"
	}
}

// CategoryTotal is the summed spending of one category.
type CategoryTotal struct {
	Category entity.CategoryName
	Amount   decimal.Decimal
}

// MonthBucket is one month of the yearly series.
type MonthBucket struct {
	Month  time.Month
	Label  string
	Amount decimal.Decimal
}

// Summary is the result of FilterAndSummarize.
type Summary struct {
	Filtered    []*entity.ExpenseRecord
	TotalSpent  decimal.Decimal
	TopCategory *CategoryTotal
}

// FilterAndSummarize selects the records matching both filters, newest
// first, and summarizes the whole input. TotalSpent and TopCategory ignore
// the filters. An empty category matches every record.
func FilterAndSummarize(
	records []*entity.ExpenseRecord,
	category entity.CategoryName,
	dateFilter DateFilter,
	now time.Time,
) Summary {
	lowerBound, bounded := windowStart(dateFilter, now)

	filtered := make([]*entity.ExpenseRecord, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if category != "" && record.Category != category {
			continue
		}
		if !matchesDate(record.Date, dateFilter, lowerBound, bounded, now) {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return Summary{
		Filtered:    filtered,
		TotalSpent:  TotalSpent(records),
		TopCategory: TopCategory(records),
	}
}

// TotalSpent sums the amounts of all records.
func TotalSpent(records []*entity.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if record != nil {
			total = total.Add(record.Amount)
		}
	}
	return total
}

// TotalsByCategory sums the records per category, in order of first
// appearance.
func TotalsByCategory(records []*entity.ExpenseRecord) []CategoryTotal {
	index := make(map[entity.CategoryName]int)
	var totals []CategoryTotal
	for _, record := range records {
		if record == nil {
			continue
		}
		i, ok := index[record.Category]
		if !ok {
			i = len(totals)
			index[record.Category] = i
			totals = append(totals, CategoryTotal{Category: record.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(record.Amount)
	}
	return totals
}

// TopCategory returns the category with the strictly greatest sum. On a tie
// the category encountered first wins. It returns nil for no records.
func TopCategory(records []*entity.ExpenseRecord) *CategoryTotal {
	var top *CategoryTotal
	for _, total := range TotalsByCategory(records) {
		if top == nil || total.Amount.GreaterThan(top.Amount) {
			t := total
			top = &t
		}
	}
	return top
}

// MonthlySeries buckets the records by calendar month, January first.
// Records of every year fall into the same twelve buckets.
func MonthlySeries(records []*entity.ExpenseRecord) []MonthBucket {
	series := make([]MonthBucket, 12)
	for i := range series {
		month := time.Month(i + 1)
		series[i] = MonthBucket{
			Month:  month,
			Label:  month.String()[:3],
			Amount: decimal.Zero,
		}
	}
	for _, record := range records {
		if record == nil {
			continue
		}
		i := int(record.Date.Month()) - 1
		series[i].Amount = series[i].Amount.Add(record.Amount)
	}
	return series
}

// windowStart returns the inclusive lower bound of the filter in now's
// location. bounded is false when the filter has no lower bound.
func windowStart(filter DateFilter, now time.Time) (time.Time, bool) {
	today := startOfDay(now)
	switch filter {
	case DateFilterToday:
		return today, true
	case DateFilterWeek:
		return today.AddDate(0, 0, -int(today.Weekday())), true
	case DateFilterMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func matchesDate(date time.Time, filter DateFilter, lowerBound time.Time, bounded bool, now time.Time) bool {
	if !bounded {
		return true
	}
	local := date.In(now.Location())
	if filter == DateFilterToday {
		y1, m1, d1 := local.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	return !local.Before(lowerBound)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
