// Package valueobject contains domain value objects for the Expense Tracker.
package valueobject

import (
	"fmt"
	"strings"
	"time"
)

// PeriodLayout is the wire format of a period ("2006-01").
const PeriodLayout = "2006-01"

// Period is a budgeting cycle: a year and a month, no day component.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod returns the period for the given year and month.
func NewPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: month}
}

// PeriodOf returns the period in which t occurs, in t's location.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a "YYYY-MM" string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, strings.TrimSpace(s))
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return PeriodOf(t), nil
}

// String returns the period formatted as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label returns a long human-readable label (e.g. "June 2023").
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// IsZero reports whether the period is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// IsValid reports whether the month is within January..December.
func (p Period) IsValid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

// AddMonths returns the period n months later (n may be negative).
func (p Period) AddMonths(n int) Period {
	return PeriodOf(time.Date(p.Year, p.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Bounds returns the first instant of the period and the first instant of
// the following period in loc.
func (p Period) Bounds(loc *time.Location) (start, end time.Time) {
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period, using t's location.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Both "YYYY-MM" and "YYYY-MM-DD" are accepted; the day is ignored.
func (p *Period) UnmarshalText(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "" {
		*p = Period{}
		return nil
	}
	if len(value) > len(PeriodLayout) {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return fmt.Errorf("invalid period %q: %w", value, err)
		}
		*p = PeriodOf(t)
		return nil
	}
	parsed, err := ParsePeriod(value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
