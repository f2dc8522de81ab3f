package report

import (
	"context"
	"sort"
	"time"
)

// Entry is one push with its project name already resolved.
type Entry struct {
	Project   ProjectName `json:"project"`
	Branch    string      `json:"branch"`
	LocalTime time.Time   `json:"local_time"`
}

// ActivitySummary is one user's pushes for the report date, chronological.
type ActivitySummary struct {
	User      Identity `json:"user"`
	PushCount int      `json:"push_count"`
	Entries   []Entry  `json:"entries"`
}

// AggregateReport folds a batch of summaries into the counts the
// presentation layer renders. ProjectOrder records first appearance so
// projections derived from the counts map stay deterministic.
type AggregateReport struct {
	Summaries          []ActivitySummary `json:"summaries"`
	ProjectCounts      map[string]int    `json:"project_counts"`
	ProjectOrder       []string          `json:"-"`
	UniqueProjectCount int               `json:"unique_project_count"`
	TotalPushes        int               `json:"total_pushes"`
	MostActiveProject  string            `json:"most_active_project,omitempty"`
}

// Aggregate resolves each push's project and builds the user's summary.
// Entries end up sorted ascending by local time; the sort is stable, so
// running it over an already-sorted sequence changes nothing.
func Aggregate(ctx context.Context, user Identity, pushes []PushEvent, resolver ProjectResolver) ActivitySummary {
	entries := make([]Entry, 0, len(pushes))
	for _, p := range pushes {
		entries = append(entries, Entry{
			Project:   resolver.ResolveProject(ctx, p.ProjectID),
			Branch:    p.Branch,
			LocalTime: p.LocalTime,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LocalTime.Before(entries[j].LocalTime)
	})
	return ActivitySummary{User: user, PushCount: len(entries), Entries: entries}
}

// BuildReport derives the cross-user counts. Unresolved projects count under
// their fallback label but never toward UniqueProjectCount.
func BuildReport(summaries []ActivitySummary) AggregateReport {
	rep := AggregateReport{
		Summaries:     summaries,
		ProjectCounts: make(map[string]int),
	}
	unique := make(map[string]struct{})
	for _, s := range summaries {
		rep.TotalPushes += s.PushCount
		for _, e := range s.Entries {
			label := e.Project.Display()
			if rep.ProjectCounts[label] == 0 {
				rep.ProjectOrder = append(rep.ProjectOrder, label)
			}
			rep.ProjectCounts[label]++
			if e.Project.IsResolved() {
				unique[e.Project.Name] = struct{}{}
			}
		}
	}
	rep.UniqueProjectCount = len(unique)
	rep.MostActiveProject = mostActive(rep)
	return rep
}

// mostActive walks projects in first-appearance order so a tie goes to the
// earliest push, never to map iteration order.
func mostActive(rep AggregateReport) string {
	best := ""
	bestCount := 0
	for _, label := range rep.ProjectOrder {
		if c := rep.ProjectCounts[label]; c > bestCount {
			best, bestCount = label, c
		}
	}
	return best
}
