// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/usecase/auth"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
)

// SessionCookie describes the cookie carrying the session identifier.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) name() string {
	if s.Name == "" {
		return middleware.DefaultSessionCookie
	}
	return s.Name
}

func (s SessionCookie) set(ctx *gin.Context, sessionID string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.name(), sessionID, maxAge, "/", "", s.Secure, true)
}

func (s SessionCookie) clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.name(), "", -1, "/", "", s.Secure, true)
}

// errorResponder maps use case errors to HTTP responses. A remote
// authentication failure also ends the current session.
type errorResponder struct {
	sessions *auth.SessionUseCase
	cookie   SessionCookie
}

func (r errorResponder) respond(ctx *gin.Context, err error, action string) {
	var (
		authErr      *domainerror.AuthError
		budgetErr    *domainerror.BudgetError
		expenseErr   *domainerror.ExpenseError
		dashboardErr *domainerror.DashboardError
		remoteErr    *domainerror.RemoteError
	)

	switch {
	case errors.As(err, &authErr):
		ctx.JSON(statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.As(err, &budgetErr):
		ctx.JSON(statusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
	case errors.As(err, &expenseErr):
		ctx.JSON(statusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
	case errors.As(err, &dashboardErr):
		ctx.JSON(statusCodeForDashboardError(dashboardErr.Code), dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
	case errors.As(err, &remoteErr):
		r.respondRemote(ctx, remoteErr, action)
	default:
		slog.Error("Request failed", "action", action, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func (r errorResponder) respondRemote(ctx *gin.Context, remoteErr *domainerror.RemoteError, action string) {
	if errors.Is(remoteErr, domainerror.ErrRemoteUnauthorized) {
		if r.sessions != nil {
			r.sessions.HandleRemoteError(
				ctx.Request.Context(),
				middleware.GetSessionIDFromContext(ctx),
				remoteErr,
			)
		}
		r.cookie.clear(ctx)
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Your session has expired. Please log in again.",
			Code:  string(remoteErr.Code()),
		})
		return
	}

	slog.Warn("Remote API call failed",
		"action", action,
		"status", remoteErr.StatusCode,
		"error", remoteErr,
	)
	ctx.JSON(statusCodeForRemoteError(remoteErr), dto.ErrorResponse{
		Error: remoteErr.UserMessage(),
		Code:  string(remoteErr.Code()),
	})
}

// statusCodeForAuthError maps auth error codes to HTTP status codes.
func statusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodePasswordMismatch,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingSession,
		domainerror.ErrCodeExpiredToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusCodeForBudgetError maps budget error codes to HTTP status codes.
func statusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeNonPositiveTotal,
		domainerror.ErrCodeNegativeAllocation,
		domainerror.ErrCodeOverAllocated,
		domainerror.ErrCodeUnknownBudgetCategory:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTotalBudgetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusCodeForExpenseError maps expense error codes to HTTP status codes.
func statusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeMissingDescription,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeMissingExpenseDate:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// statusCodeForDashboardError maps dashboard and report error codes to HTTP status codes.
func statusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateFilter,
		domainerror.ErrCodeInvalidCategoryFilter,
		domainerror.ErrCodeInvalidReportPeriod,
		domainerror.ErrCodeUnsupportedExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusCodeForRemoteError passes client errors through and reports every
// other remote failure as a gateway problem.
func statusCodeForRemoteError(remoteErr *domainerror.RemoteError) int {
	switch {
	case errors.Is(remoteErr, domainerror.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	case remoteErr.StatusCode >= 400 && remoteErr.StatusCode < 500:
		return remoteErr.StatusCode
	default:
		return http.StatusBadGateway
	}
}
