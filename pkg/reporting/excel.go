package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ExcelReporter writes a run report workbook: a summary sheet plus the
// full indicator series.
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// Write writes the run report to an xlsx file at path.
func (r *ExcelReporter) Write(summary *RunSummary, series []SeriesPoint, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const seriesSheet = "Series"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	if _, err := fx.NewSheet(seriesSheet); err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, summary); err != nil {
		return err
	}
	if err := r.writeSeriesSheet(fx, seriesSheet, series); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, summary *RunSummary) error {
	rows := [][]interface{}{
		{"Symbol", summary.Symbol},
		{"Bars", summary.Bars},
		{"Skipped", summary.Skipped},
		{"Indicator", fmt.Sprintf("%s(%d)", summary.Indicator, summary.Period)},
		{"Final value", summary.FinalValue},
		{"Initialized", summary.Initialized},
		{"Entry", summary.Entry.String()},
		{"Stop loss", summary.StopLoss.String()},
		{"Equity", summary.Equity.String()},
		{"Sized quantity", summary.SizedQuantity.String()},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writeSeriesSheet(fx *excelize.File, sheet string, series []SeriesPoint) error {
	header := []interface{}{"Time", "Close", "Value", "State", "Initialized"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, point := range series {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			point.Timestamp.Format("2006-01-02 15:04:05"),
			point.Close,
			point.Value,
			point.State,
			point.Initialized,
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
