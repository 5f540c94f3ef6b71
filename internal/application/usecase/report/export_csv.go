// Package report contains monthly report use cases.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	domainerror "github.com/expense-tracker/web/internal/domain/error"
)

// ExportFormatCSV is the only supported export format.
const ExportFormatCSV = "csv"

// ExportReportInput represents the input for a report export.
type ExportReportInput struct {
	GetReportInput
	Format string
}

// ExportReportUseCase writes a period's report in a downloadable format.
type ExportReportUseCase struct {
	getReport *GetReportUseCase
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(getReport *GetReportUseCase) *ExportReportUseCase {
	return &ExportReportUseCase{
		getReport: getReport,
	}
}

// Filename returns the attachment name of an export.
func (in ExportReportInput) Filename() string {
	return fmt.Sprintf("expense-report-%s.%s", in.Period, ExportFormatCSV)
}

// Execute builds the report and writes it to w.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput, w io.Writer) error {
	if format := strings.ToLower(input.Format); format != "" && format != ExportFormatCSV {
		return unsupportedFormat(format)
	}

	report, err := uc.getReport.Execute(ctx, input.GetReportInput)
	if err != nil {
		return err
	}

	return WriteCSV(w, report)
}

// WriteCSV writes the report summary followed by one row per category.
func WriteCSV(w io.Writer, report *GetReportOutput) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Period", report.Summary.Period.Label()},
		{"Total Expenses", report.Summary.TotalExpenses.StringFixed(2)},
		{"Total Budget", report.Summary.TotalBudget.StringFixed(2)},
		{"Budget Used (%)", strconv.Itoa(report.BudgetUsedPercent)},
		{},
		{"Category", "Amount", "Share (%)", "Budget", "Budget Used (%)"},
	}
	for _, category := range report.Categories {
		budget := ""
		if category.Budget != nil {
			budget = category.Budget.StringFixed(2)
		}
		rows = append(rows, []string{
			string(category.Category),
			category.Amount.StringFixed(2),
			strconv.Itoa(category.Percentage),
			budget,
			strconv.Itoa(category.BudgetPercent),
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write report csv: %w", err)
	}
	return nil
}

func unsupportedFormat(format string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeUnsupportedExportFormat,
		fmt.Sprintf("export format %q is not supported", format),
		domainerror.ErrUnsupportedExportFormat,
	)
}
