// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/expense"
	"github.com/expense-tracker/web/internal/domain/entity"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/web/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	responder     errorResponder
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		responder:     errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// List handles GET /expenses requests.
// Supported filters: category, startDate with endDate, or today=true.
func (c *ExpenseController) List(ctx *gin.Context) {
	var input expense.ListExpensesInput

	if raw := ctx.Query("category"); raw != "" {
		category, ok := entity.ParseCategoryName(raw)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("unknown category %q", raw),
				Code:  string(domainerror.ErrCodeInvalidExpenseCategory),
			})
			return
		}
		input.Category = category
	}

	startDate, startErr := parseOptionalDate(ctx.Query("startDate"))
	endDate, endErr := parseOptionalDate(ctx.Query("endDate"))
	if startErr != nil || endErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate and endDate must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFilter),
		})
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate
	input.Today = strings.EqualFold(ctx.Query("today"), "true")

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "list expenses")
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: dto.ToExpenseResponses(output.Expenses),
		Total:    expense.TotalSpent(output.Expenses).StringFixed(2),
	})
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := idFromPath(ctx)
	if !ok {
		c.invalidID(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ID: id})
	if err != nil {
		c.responder.respond(ctx, err, "get expense")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	input := expense.CreateExpenseInput{
		UserID:        userID,
		ExpenseFields: fields,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "create expense")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests. The record is replaced whole.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := idFromPath(ctx)
	if !ok {
		c.invalidID(ctx)
		return
	}

	fields, ok := c.bindFields(ctx)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	input := expense.UpdateExpenseInput{
		ID:            id,
		UserID:        userID,
		ExpenseFields: fields,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "update expense")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := idFromPath(ctx)
	if !ok {
		c.invalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ID: id}); err != nil {
		c.responder.respond(ctx, err, "delete expense")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindFields reads an ExpenseRequest body. An unknown category is passed on
// as given so validation reports it.
func (c *ExpenseController) bindFields(ctx *gin.Context) (expense.ExpenseFields, bool) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Please fill in all required fields",
			Code:    string(domainerror.ErrCodeMissingExpenseFields),
			Details: err.Error(),
		})
		return expense.ExpenseFields{}, false
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseDate),
		})
		return expense.ExpenseFields{}, false
	}

	category, ok := entity.ParseCategoryName(req.Category)
	if !ok {
		category = entity.CategoryName(req.Category)
	}

	return expense.ExpenseFields{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    category,
		Date:        date,
		Tags:        req.Tags,
	}, true
}

func (c *ExpenseController) invalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid expense ID",
		Code:  string(domainerror.ErrCodeExpenseNotFound),
	})
}
