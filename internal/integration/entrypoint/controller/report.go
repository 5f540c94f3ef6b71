// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/web/internal/application/adapter"
	"github.com/expense-tracker/web/internal/application/usecase/auth"
	"github.com/expense-tracker/web/internal/application/usecase/report"
	domainerror "github.com/expense-tracker/web/internal/domain/error"
	"github.com/expense-tracker/web/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	getReportUseCase *report.GetReportUseCase
	exportUseCase    *report.ExportReportUseCase
	clock            adapter.Clock
	responder        errorResponder
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getReportUseCase *report.GetReportUseCase,
	exportUseCase *report.ExportReportUseCase,
	clock adapter.Clock,
	sessionUseCase *auth.SessionUseCase,
	cookie SessionCookie,
) *ReportController {
	if clock == nil {
		clock = time.Now
	}
	return &ReportController{
		getReportUseCase: getReportUseCase,
		exportUseCase:    exportUseCase,
		clock:            clock,
		responder:        errorResponder{sessions: sessionUseCase, cookie: cookie},
	}
}

// Years handles GET /reports/years requests.
func (c *ReportController) Years(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.YearListResponse{Years: report.AvailableYears(c.clock())})
}

// Get handles GET /reports/:year/:month requests.
func (c *ReportController) Get(ctx *gin.Context) {
	input, ok := c.reportInput(ctx)
	if !ok {
		return
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.responder.respond(ctx, err, "get report")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// Export handles GET /reports/:year/:month/export requests.
// The report is rendered in full before any byte is sent so that failures
// still produce a JSON error.
func (c *ReportController) Export(ctx *gin.Context) {
	reportInput, ok := c.reportInput(ctx)
	if !ok {
		return
	}

	input := report.ExportReportInput{
		GetReportInput: reportInput,
		Format:         ctx.DefaultQuery("format", report.ExportFormatCSV),
	}

	var buf bytes.Buffer
	if err := c.exportUseCase.Execute(ctx.Request.Context(), input, &buf); err != nil {
		c.responder.respond(ctx, err, "export report")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", input.Filename()))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (c *ReportController) reportInput(ctx *gin.Context) (report.GetReportInput, bool) {
	period, ok := periodFromPath(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid report period",
			Code:  string(domainerror.ErrCodeInvalidReportPeriod),
		})
		return report.GetReportInput{}, false
	}
	return report.GetReportInput{Period: period}, true
}
