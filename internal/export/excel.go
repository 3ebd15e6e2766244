package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/report"
	"github.com/internboard/backend/internal/status"
)

// WriteWorkbook writes the recruitment report as an Excel workbook with a
// Summary sheet, a Candidates sheet mirroring the full CSV report, and a
// Ratings sheet with the star histogram.
func WriteWorkbook(w io.Writer, ds *dataset.Store, ss *status.Store, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	candidatesSheet := "Candidates"
	ratingsSheet := "Ratings"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ratingsSheet); err != nil {
		return err
	}

	if err := buildSummarySheet(f, summarySheet, ds, ss, generatedAt); err != nil {
		return fmt.Errorf("building summary sheet: %w", err)
	}
	if err := buildCandidatesSheet(f, candidatesSheet, ds, ss); err != nil {
		return fmt.Errorf("building candidates sheet: %w", err)
	}
	if err := buildRatingsSheet(f, ratingsSheet, ss); err != nil {
		return fmt.Errorf("building ratings sheet: %w", err)
	}

	return f.Write(w)
}

func buildSummarySheet(f *excelize.File, sheet string, ds *dataset.Store, ss *status.Store, generatedAt time.Time) error {
	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 24)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	ov := report.BuildOverview(ds, ss)

	row := 1
	f.SetCellValue(sheet, cell("A", row), "Recruitment Summary")
	f.SetCellStyle(sheet, cell("A", row), cell("B", row), headerStyle)
	f.MergeCell(sheet, cell("A", row), cell("B", row))
	row += 2

	lines := []struct {
		label string
		value interface{}
	}{
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{"Total Applications", ov.Total},
		{"Shortlisted", fmt.Sprintf("%d (%s)", ov.Shortlisted, ov.ShortlistedPct)},
		{"Rejected", fmt.Sprintf("%d (%s)", ov.Rejected, ov.RejectedPct)},
		{"Pending Review", fmt.Sprintf("%d (%s)", ov.Pending, ov.PendingPct)},
		{"Contacted", ov.Contacted},
		{"Interviews Scheduled", ov.Interviews},
		{"Ready for Onboarding", len(report.OnboardingReadyIDs(ss))},
	}
	for _, l := range lines {
		f.SetCellValue(sheet, cell("A", row), l.label)
		f.SetCellStyle(sheet, cell("A", row), cell("A", row), labelStyle)
		f.SetCellValue(sheet, cell("B", row), l.value)
		row++
	}

	row++
	f.SetCellValue(sheet, cell("A", row), "Funnel Stage")
	f.SetCellValue(sheet, cell("B", row), "Count")
	f.SetCellStyle(sheet, cell("A", row), cell("B", row), labelStyle)
	row++
	for _, stage := range report.Funnel(ds, ss) {
		f.SetCellValue(sheet, cell("A", row), stage.Stage)
		f.SetCellValue(sheet, cell("B", row), stage.Count)
		row++
	}

	return nil
}

func buildCandidatesSheet(f *excelize.File, sheet string, ds *dataset.Store, ss *status.Store) error {
	headers := append(ds.Headers(), derivedColumns...)
	for col, h := range headers {
		name, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, name, h)
	}
	for i, rec := range ds.All() {
		row := append(rec.Raw(), derivedCells(ss, rec.ID())...)
		for col, v := range row {
			name, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, name, v)
		}
	}
	return nil
}

func buildRatingsSheet(f *excelize.File, sheet string, ss *status.Store) error {
	f.SetCellValue(sheet, "A1", "Stars")
	f.SetCellValue(sheet, "B1", "Candidates")
	hist := report.RatingsHistogram(ss)
	row := 2
	for stars := models.MaxRating; stars >= 1; stars-- {
		f.SetCellValue(sheet, cell("A", row), stars)
		f.SetCellValue(sheet, cell("B", row), hist[stars])
		row++
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
