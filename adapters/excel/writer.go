// Package excel renders comparison reports as .xlsx workbooks for download.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"paperlens/domain/paper"
	"paperlens/internal/errors"
)

const sheetName = "Comparison"

var headers = []string{"Title", "Sample Size", "Min P-Value", "Significant"}

// ReportWriter turns a ComparisonReport into a workbook.
type ReportWriter struct{}

// NewReportWriter creates a comparison report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Bytes renders the report as a complete .xlsx file.
func (w *ReportWriter) Bytes(report paper.ComparisonReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create comparison sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	// Summary block first, then one row per paper.
	summaryRows := [][]interface{}{
		{"Total Papers", report.TotalPapers},
		{"Significant Papers", report.SignificantCount},
	}
	if report.AvgSampleSize != nil {
		summaryRows = append(summaryRows, []interface{}{"Average Sample Size", *report.AvgSampleSize})
	}
	for r, row := range summaryRows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, errors.Wrap(err, "failed to write summary cell")
			}
		}
	}

	headerRow := len(summaryRows) + 2
	for c, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, headerRow)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, errors.Wrap(err, "failed to write header cell")
		}
	}

	for r, p := range report.Papers {
		row := []interface{}{p.Title, p.SampleSize, p.MinPValue, significanceLabel(p.IsSignificant)}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, errors.Wrapf(err, "failed to write row for %s", p.Title)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render workbook")
	}
	return buf.Bytes(), nil
}

func significanceLabel(significant bool) string {
	if significant {
		return "Yes"
	}
	return "No"
}

// FileName suggests a download name for the exported report.
func (w *ReportWriter) FileName(report paper.ComparisonReport) string {
	return fmt.Sprintf("paper-comparison-%d.xlsx", report.TotalPapers)
}
