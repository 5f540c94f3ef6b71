// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/domain/valueobject"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
)

// parseDate reads a calendar date in local time. RFC 3339 timestamps are
// accepted as well.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(dto.DateLayout, value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// periodFromPath reads the :year and :month path parameters.
func periodFromPath(ctx *gin.Context) (valueobject.Period, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return valueobject.Period{}, false
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		return valueobject.Period{}, false
	}
	period := valueobject.NewPeriod(year, time.Month(month))
	return period, period.IsValid()
}

// idFromPath reads the :id path parameter.
func idFromPath(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
