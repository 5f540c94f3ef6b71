// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/dashboard"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
	responder           errorResponder
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
		responder:           errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// Get handles GET /dashboard requests.
// Query parameters: category (optional), date_filter (today, week, month or all).
func (c *DashboardController) Get(ctx *gin.Context) {
	input := dashboard.GetDashboardInput{
		Category:   ctx.Query("category"),
		DateFilter: ctx.Query("date_filter"),
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "get dashboard")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
