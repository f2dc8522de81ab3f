package main

import (
	"fmt"
	"strings"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

// parseCommaList splits a comma-separated string and trims whitespace
func parseCommaList(input string) []string {
	if input == "" {
		return []string{}
	}

	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func printReport(rep report.AggregateReport) {
	fmt.Println()
	for _, row := range report.Rows(rep.Summaries) {
		fmt.Printf("%s (%d push events)\n", row.Username, row.PushEvents)
		for _, line := range strings.Split(row.Activity, "\n") {
			fmt.Printf("  - %s\n", line)
		}
	}

	fmt.Println("\nKey insights:")
	fmt.Printf("  Total push events: %d\n", rep.TotalPushes)
	fmt.Printf("  Unique projects worked on: %d\n", rep.UniqueProjectCount)
	if rep.MostActiveProject != "" {
		fmt.Printf("  Most active project: %s\n", rep.MostActiveProject)
	}
}
