package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoPushes is the activity placeholder for a day without pushes.
const NoPushes = "No push events today."

// Row is one flat table record per user.
type Row struct {
	Username   string `json:"username"`
	PushEvents int    `json:"push_events"`
	Activity   string `json:"activity"`
}

// ChartBucket is one (label, count) pair for the pushes-by-project chart.
type ChartBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TimelinePoint is one dot on a user's push timeline.
type TimelinePoint struct {
	Time    time.Time `json:"time"`
	Project string    `json:"project"`
	Branch  string    `json:"branch"`
}

// Rows flattens summaries into table records, one per user, in input order.
func Rows(summaries []ActivitySummary) []Row {
	rows := make([]Row, 0, len(summaries))
	for _, s := range summaries {
		activity := NoPushes
		if len(s.Entries) > 0 {
			lines := make([]string, len(s.Entries))
			for i, e := range s.Entries {
				lines[i] = Describe(e)
			}
			activity = strings.Join(lines, "\n")
		}
		rows = append(rows, Row{
			Username:   s.User.Username,
			PushEvents: s.PushCount,
			Activity:   activity,
		})
	}
	return rows
}

// Describe renders one entry as a human-readable activity line.
func Describe(e Entry) string {
	return fmt.Sprintf("Pushed to '%s' in '%s' at %s", e.Branch, e.Project.Display(), Clock(e.LocalTime))
}

// ChartBuckets projects the report's counts in first-appearance order.
func ChartBuckets(rep AggregateReport) []ChartBucket {
	buckets := make([]ChartBucket, 0, len(rep.ProjectOrder))
	for _, label := range rep.ProjectOrder {
		buckets = append(buckets, ChartBucket{Label: label, Count: rep.ProjectCounts[label]})
	}
	return buckets
}

// TimelinePoints projects one user's entries as time-ordered points.
func TimelinePoints(s ActivitySummary) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(s.Entries))
	for _, e := range s.Entries {
		points = append(points, TimelinePoint{
			Time:    e.LocalTime,
			Project: e.Project.Display(),
			Branch:  e.Branch,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points
}
