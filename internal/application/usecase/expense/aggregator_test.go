package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/web/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(amount string, category entity.CategoryName, description string, date time.Time) *entity.ExpenseRecord {
	return entity.NewExpenseRecord(1, d(amount), description, category, date)
}

// Wednesday.
var now = time.Date(2024, time.June, 19, 15, 0, 0, 0, time.UTC)

func sampleRecords() []*entity.ExpenseRecord {
	return []*entity.ExpenseRecord{
		record("45.99", entity.CategoryFood, "Grocery shopping", now),
		record("25.50", entity.CategoryTransportation, "Gas", now.AddDate(0, 0, -1)),
		record("120.00", entity.CategoryUtilities, "Electricity bill", now.AddDate(0, 0, -2)),
		record("35.75", entity.CategoryEntertainment, "Movie tickets", now.AddDate(0, 0, -3)),
		record("1200.00", entity.CategoryHousing, "Rent", now.AddDate(0, 0, -5)),
	}
}

func TestFilterAndSummarize(t *testing.T) {
	tests := []struct {
		name      string
		category  entity.CategoryName
		filter    DateFilter
		wantDescs []string
	}{
		{
			name:      "month keeps every sample record",
			filter:    DateFilterMonth,
			wantDescs: []string{"Grocery shopping", "Gas", "Electricity bill", "Movie tickets", "Rent"},
		},
		{
			name:      "week starts on the most recent Sunday",
			filter:    DateFilterWeek,
			wantDescs: []string{"Grocery shopping", "Gas", "Electricity bill", "Movie tickets"},
		},
		{
			name:      "today",
			filter:    DateFilterToday,
			wantDescs: []string{"Grocery shopping"},
		},
		{
			name:      "category with all dates",
			category:  entity.CategoryHousing,
			filter:    DateFilterAll,
			wantDescs: []string{"Rent"},
		},
		{
			name:      "category and date must both match",
			category:  entity.CategoryHousing,
			filter:    DateFilterWeek,
			wantDescs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := FilterAndSummarize(sampleRecords(), tt.category, tt.filter, now)

			got := make([]string, 0, len(summary.Filtered))
			for _, r := range summary.Filtered {
				got = append(got, r.Description)
			}
			assert.Equal(t, tt.wantDescs, got)

			assert.True(t, summary.TotalSpent.Equal(d("1427.24")), "total = %s", summary.TotalSpent)
			require.NotNil(t, summary.TopCategory)
			assert.Equal(t, entity.CategoryHousing, summary.TopCategory.Category)
			assert.True(t, summary.TopCategory.Amount.Equal(d("1200")))
		})
	}
}

func TestFilterAndSummarize_SortsNewestFirstAndKeepsInput(t *testing.T) {
	input := []*entity.ExpenseRecord{
		record("1", entity.CategoryFood, "old", now.AddDate(0, 0, -3)),
		record("2", entity.CategoryFood, "new", now),
		record("3", entity.CategoryFood, "same-a", now.AddDate(0, 0, -1)),
		record("4", entity.CategoryFood, "same-b", now.AddDate(0, 0, -1)),
	}

	summary := FilterAndSummarize(input, "", DateFilterAll, now)

	require.Len(t, summary.Filtered, 4)
	assert.Equal(t, "new", summary.Filtered[0].Description)
	assert.Equal(t, "same-a", summary.Filtered[1].Description)
	assert.Equal(t, "same-b", summary.Filtered[2].Description)
	assert.Equal(t, "old", summary.Filtered[3].Description)
	assert.Equal(t, "old", input[0].Description)
}

func TestFilterAndSummarize_Empty(t *testing.T) {
	summary := FilterAndSummarize(nil, "", DateFilterMonth, now)

	assert.Empty(t, summary.Filtered)
	assert.True(t, summary.TotalSpent.IsZero())
	assert.Nil(t, summary.TopCategory)
}

func TestFilterAndSummarize_WeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.June, 16, 9, 0, 0, 0, time.UTC)
	input := []*entity.ExpenseRecord{
		record("1", entity.CategoryFood, "sunday morning", time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)),
		record("1", entity.CategoryFood, "saturday night", time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)),
	}

	summary := FilterAndSummarize(input, "", DateFilterWeek, sunday)

	require.Len(t, summary.Filtered, 1)
	assert.Equal(t, "sunday morning", summary.Filtered[0].Description)
}

func TestTopCategory_TieKeepsFirstEncountered(t *testing.T) {
	input := []*entity.ExpenseRecord{
		record("50", entity.CategoryShopping, "a", now),
		record("30", entity.CategoryFood, "b", now),
		record("20", entity.CategoryFood, "c", now),
	}

	top := TopCategory(input)

	require.NotNil(t, top)
	assert.Equal(t, entity.CategoryShopping, top.Category)
}

func TestMonthlySeries(t *testing.T) {
	input := []*entity.ExpenseRecord{
		record("10", entity.CategoryFood, "a", time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)),
		record("15", entity.CategoryFood, "b", time.Date(2023, time.January, 9, 0, 0, 0, 0, time.UTC)),
		record("7.5", entity.CategoryFood, "c", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}

	series := MonthlySeries(input)

	require.Len(t, series, 12)
	assert.Equal(t, "Jan", series[0].Label)
	assert.Equal(t, "Dec", series[11].Label)
	assert.True(t, series[0].Amount.Equal(d("25")))
	assert.True(t, series[11].Amount.Equal(d("7.5")))
	assert.True(t, series[5].Amount.IsZero())
}

func TestParseDateFilter(t *testing.T) {
	for _, value := range []string{"", "all", "ALL", " week ", "today", "month"} {
		_, ok := ParseDateFilter(value)
		assert.True(t, ok, value)
	}
	_, ok := ParseDateFilter("year")
	assert.False(t, ok)
	assert.Equal(t, "This Week", DateFilterWeek.Label())
	assert.Equal(t, "All Time", DateFilterAll.Label())
}
