package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRows_ActivityFormat(t *testing.T) {
	summary := ActivitySummary{
		User:      Identity{Username: "alice", Found: true},
		PushCount: 2,
		Entries: []Entry{
			{Project: ResolvedProject("widget"), Branch: "main", LocalTime: at(9, 15)},
			{Project: ProjectName{Resolution: AccessDenied}, Branch: "dev", LocalTime: at(14, 5)},
		},
	}

	rows := Rows([]ActivitySummary{summary})

	assert.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, 2, rows[0].PushEvents)
	assert.Equal(t,
		"Pushed to 'main' in 'widget' at 09:15 AM\n"+
			"Pushed to 'dev' in 'Access denied' at 02:05 PM",
		rows[0].Activity)
}

func TestRows_SentinelForNoPushes(t *testing.T) {
	summaries := []ActivitySummary{
		{User: Identity{Username: "alice", Found: true}, PushCount: 1, Entries: []Entry{
			{Project: ResolvedProject("widget"), Branch: "main", LocalTime: at(9, 0)},
		}},
		{User: Identity{Username: "ghost"}},
	}

	rows := Rows(summaries)

	assert.Len(t, rows, 2)
	assert.Equal(t, "ghost", rows[1].Username)
	assert.Equal(t, 0, rows[1].PushEvents)
	assert.Equal(t, NoPushes, rows[1].Activity)
}

func TestChartBuckets_Deterministic(t *testing.T) {
	summary := ActivitySummary{
		User: testUser,
		Entries: []Entry{
			{Project: ResolvedProject("B"), LocalTime: at(9, 0)},
			{Project: ResolvedProject("A"), LocalTime: at(10, 0)},
			{Project: ResolvedProject("B"), LocalTime: at(11, 0)},
		},
	}
	rep := BuildReport([]ActivitySummary{summary})

	first := ChartBuckets(rep)
	second := ChartBuckets(rep)

	assert.Equal(t, first, second)
	assert.Equal(t, []ChartBucket{{Label: "B", Count: 2}, {Label: "A", Count: 1}}, first)

	// Rebuilding the report from the same summaries must not change the order.
	again := ChartBuckets(BuildReport([]ActivitySummary{summary}))
	assert.Equal(t, first, again)
}

func TestTimelinePoints_SortedByTime(t *testing.T) {
	summary := ActivitySummary{
		User: testUser,
		Entries: []Entry{
			{Project: ResolvedProject("A"), Branch: "main", LocalTime: at(9, 0)},
			{Project: ResolvedProject("B"), Branch: "dev", LocalTime: at(11, 0)},
		},
	}

	points := TimelinePoints(summary)

	assert.Len(t, points, 2)
	assert.Equal(t, "A", points[0].Project)
	assert.Equal(t, "B", points[1].Project)
	assert.True(t, points[0].Time.Before(points[1].Time))

	assert.Equal(t, points, TimelinePoints(summary))
}

func TestDescribe(t *testing.T) {
	entry := Entry{Project: ResolvedProject("widget"), Branch: "main", LocalTime: at(23, 59)}

	assert.Equal(t, "Pushed to 'main' in 'widget' at 11:59 PM", Describe(entry))
}
