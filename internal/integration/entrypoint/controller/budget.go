// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/budget"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/domain/valueobject"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	getFormUseCase *budget.GetBudgetFormUseCase
	saveUseCase    *budget.SaveBudgetUseCase
	clock          adapter.Clock
	responder      errorResponder
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getFormUseCase *budget.GetBudgetFormUseCase,
	saveUseCase *budget.SaveBudgetUseCase,
	clock adapter.Clock,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *BudgetController {
	if clock == nil {
		clock = time.Now
	}
	return &BudgetController{
		getFormUseCase: getFormUseCase,
		saveUseCase:    saveUseCase,
		clock:          clock,
		responder:      errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// Months handles GET /budgets/months requests.
func (c *BudgetController) Months(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToMonthListResponse(budget.AvailableMonths(c.clock())))
}

// GetForm handles GET /budgets/:year/:month requests.
// A month without a budget yields an empty form.
func (c *BudgetController) GetForm(ctx *gin.Context) {
	period, ok := periodFromPath(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "please select a valid month",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	output, err := c.getFormUseCase.Execute(ctx.Request.Context(), budget.GetBudgetFormInput{Period: period})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) && budgetErr.Code == domainerror.ErrCodeTotalBudgetNotFound {
			ctx.JSON(http.StatusOK, dto.ToBudgetFormResponse(emptyBudgetForm(period)))
			return
		}
		c.responder.respond(ctx, err, "get budget form")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetFormResponse(output))
}

// PreviewAllocation handles POST /budgets/allocation requests.
// It reports the allocated sum and percentage without storing anything.
func (c *BudgetController) PreviewAllocation(ctx *gin.Context) {
	var req dto.AllocationPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
			Details: err.Error(),
		})
		return
	}

	allocation := budget.ComputeAllocation(req.Total, toAllocationMap(req.Allocations))
	ctx.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// Save handles PUT /budgets requests.
func (c *BudgetController) Save(ctx *gin.Context) {
	var req dto.SaveBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Please enter a total budget and select a month",
			Code:    string(domainerror.ErrCodeMissingBudgetFields),
			Details: err.Error(),
		})
		return
	}

	period, err := valueobject.ParsePeriod(req.Period)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "please select a valid month",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	input := budget.SaveBudgetInput{
		UserID:      userID,
		Period:      period,
		BudgetID:    req.BudgetID,
		Total:       req.Total,
		Allocations: toAllocationMap(req.Allocations),
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "save budget")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaveBudgetResponse(output))
}

// toAllocationMap keys the submitted allocations by category. Unknown names
// are kept verbatim so validation can reject them.
func toAllocationMap(raw map[string]decimal.Decimal) map[entity.CategoryName]decimal.Decimal {
	allocations := make(map[entity.CategoryName]decimal.Decimal, len(raw))
	for name, amount := range raw {
		category, ok := entity.ParseCategoryName(name)
		if !ok {
			category = entity.CategoryName(name)
		}
		allocations[category] = allocations[category].Add(amount)
	}
	return allocations
}

func emptyBudgetForm(period valueobject.Period) *budget.GetBudgetFormOutput {
	return &budget.GetBudgetFormOutput{
		Period:      period,
		Allocations: map[entity.CategoryName]decimal.Decimal{},
		Allocation:  budget.ComputeAllocation(decimal.Zero, nil),
	}
}
