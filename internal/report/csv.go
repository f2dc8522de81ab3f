package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CSVExporter struct {
	OutputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{OutputDir: outputDir}
}

// Export writes the per-user summary table for one report date.
func (e *CSVExporter) Export(rows []Row, day time.Time) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(e.OutputDir, fmt.Sprintf("daily_report_%s.csv", day.Format("2006-01-02")))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"#", "Username", "Push Events", "Activity"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, row := range rows {
		record := []string{
			fmt.Sprintf("%d", i+1),
			row.Username,
			fmt.Sprintf("%d", row.PushEvents),
			row.Activity,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
