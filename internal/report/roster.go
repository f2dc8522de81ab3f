package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadRoster reads usernames from a CSV with a "username" column, in order.
// Blank cells are skipped, other columns are ignored.
func ReadRoster(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "username") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("roster has no 'username' column")
	}

	var usernames []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}
		if col >= len(record) {
			continue
		}
		if u := strings.TrimSpace(record[col]); u != "" {
			usernames = append(usernames, u)
		}
	}
	return usernames, nil
}
