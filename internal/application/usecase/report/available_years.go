// Package report contains monthly report use cases.
package report

import "time"

// availableYearCount is the current year plus the two previous ones.
const availableYearCount = 3

// AvailableYears returns the selectable report years, newest first.
func AvailableYears(now time.Time) []int {
	years := make([]int, 0, availableYearCount)
	for i := 0; i < availableYearCount; i++ {
		years = append(years, now.Year()-i)
	}
	return years
}
