package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

type ExcelExporter struct {
	OutputDir string
}

func NewExcelExporter(outputDir string) *ExcelExporter {
	return &ExcelExporter{OutputDir: outputDir}
}

// Export writes one workbook per report date: a Dashboard sheet with the
// pushes-by-project table and chart, then one timeline sheet per user.
func (e *ExcelExporter) Export(rep AggregateReport, day time.Time) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("daily_report_%s.xlsx", day.Format("2006-01-02")))

	f := excelize.NewFile()
	defer f.Close()

	if err := e.createDashboardSheet(f, "Dashboard", rep, day); err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	for _, summary := range rep.Summaries {
		sheetName := sanitizeSheetName(summary.User.Username)
		if err := e.createUserSheet(f, sheetName, summary); err != nil {
			return fmt.Errorf("failed to create sheet for %s: %w", summary.User.Username, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		//NOTE:
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) createDashboardSheet(f *excelize.File, sheetName string, rep AggregateReport, day time.Time) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	totalStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B4C7E7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, "A1", "Report date:")
	f.SetCellValue(sheetName, "B1", day.Format("02-01-06"))

	buckets := ChartBuckets(rep)

	headerRow := 3
	f.SetCellValue(sheetName, cellName(1, headerRow), "Project")
	f.SetCellStyle(sheetName, cellName(1, headerRow), cellName(1, headerRow), headerStyle)
	f.SetCellValue(sheetName, cellName(2, headerRow), "Pushes")
	f.SetCellStyle(sheetName, cellName(2, headerRow), cellName(2, headerRow), headerStyle)

	row := headerRow + 1
	for _, bucket := range buckets {
		f.SetCellValue(sheetName, cellName(1, row), bucket.Label)
		f.SetCellValue(sheetName, cellName(2, row), bucket.Count)
		row++
	}

	f.SetCellValue(sheetName, cellName(1, row), "Total")
	f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), totalStyle)
	f.SetCellValue(sheetName, cellName(2, row), rep.TotalPushes)
	f.SetCellStyle(sheetName, cellName(2, row), cellName(2, row), totalStyle)

	row += 2
	f.SetCellValue(sheetName, cellName(1, row), "Unique projects:")
	f.SetCellValue(sheetName, cellName(2, row), rep.UniqueProjectCount)
	row++
	f.SetCellValue(sheetName, cellName(1, row), "Most active project:")
	f.SetCellValue(sheetName, cellName(2, row), rep.MostActiveProject)

	if len(buckets) > 0 {
		firstData := headerRow + 1
		lastData := headerRow + len(buckets)
		if err := f.AddChart(sheetName, "D3", &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$%d", sheetName, headerRow),
				Categories: fmt.Sprintf("%s!$A$%d:$A$%d", sheetName, firstData, lastData),
				Values:     fmt.Sprintf("%s!$B$%d:$B$%d", sheetName, firstData, lastData),
			}},
			Title:  []excelize.RichTextRun{{Text: "Pushes by Project"}},
			Legend: excelize.ChartLegend{Position: "none"},
		}); err != nil {
			return fmt.Errorf("failed to add chart: %w", err)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 35)
	f.SetColWidth(sheetName, "B", "B", 12)

	return nil
}

func (e *ExcelExporter) createUserSheet(f *excelize.File, sheetName string, summary ActivitySummary) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	headers := []string{"#", "Time", "Project", "Branch"}
	for col, header := range headers {
		cell := cellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	points := TimelinePoints(summary)
	if len(points) == 0 {
		f.SetCellValue(sheetName, "A2", NoPushes)
		f.MergeCell(sheetName, "A2", "D2")
	}

	for i, point := range points {
		row := i + 2
		f.SetCellValue(sheetName, cellName(1, row), i+1)
		f.SetCellValue(sheetName, cellName(2, row), Clock(point.Time))
		f.SetCellValue(sheetName, cellName(3, row), point.Project)
		f.SetCellValue(sheetName, cellName(4, row), point.Branch)
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 35)
	f.SetColWidth(sheetName, "D", "D", 25)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnLetter(col), row)
}

func columnLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

func sanitizeSheetName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	name = strings.ReplaceAll(name, "?", "")
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "[", "(")
	name = strings.ReplaceAll(name, "]", ")")

	if len(name) > 31 {
		name = name[:31]
	}

	return name
}
