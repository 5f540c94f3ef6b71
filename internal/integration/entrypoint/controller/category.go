// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/category"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
	responder   errorResponder
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
		responder:   errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// List handles GET /categories requests.
// With startDate and endDate each category carries its spending in that range.
func (c *CategoryController) List(ctx *gin.Context) {
	startDate, err := parseOptionalDate(ctx.Query("startDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "startDate must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFilter),
		})
		return
	}
	endDate, err := parseOptionalDate(ctx.Query("endDate"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "endDate must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFilter),
		})
		return
	}

	input := category.ListCategoriesInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "list categories")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output))
}
