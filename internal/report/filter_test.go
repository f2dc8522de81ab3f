package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	testDay    = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	testOffset = 5*time.Hour + 30*time.Minute
	testUser   = Identity{Username: "alice", ID: 7, Found: true}
)

func TestFilterPushes_KeepsOnlyPushActions(t *testing.T) {
	events := []RawEvent{
		{Action: "pushed to", ProjectID: 1, CreatedAt: "2025-06-02T04:00:00.000Z", Branch: "main"},
		{Action: "opened", ProjectID: 2, CreatedAt: "2025-06-02T05:00:00.000Z"},
		{Action: "commented on", ProjectID: 3, CreatedAt: "2025-06-02T06:00:00.000Z"},
		{Action: "pushed new", ProjectID: 4, CreatedAt: "2025-06-02T07:00:00.000Z"},
		{Action: "pushed to", ProjectID: 5, CreatedAt: "2025-06-02T08:00:00.000Z", Branch: "dev"},
	}

	pushes := FilterPushes(testUser, events, testDay, testOffset)

	assert.LessOrEqual(t, len(pushes), len(events))
	assert.Len(t, pushes, 2)
	assert.Equal(t, int64(1), pushes[0].ProjectID)
	assert.Equal(t, int64(5), pushes[1].ProjectID)
}

func TestFilterPushes_DateBoundaries(t *testing.T) {
	testCases := []struct {
		name      string
		createdAt string
		want      bool
	}{
		{"UTC previous evening is local report day", "2025-06-01T19:00:00.000Z", true},
		{"last local second of the day", "2025-06-02T18:29:59.000Z", true},
		{"first local second of the next day", "2025-06-02T18:30:00.000Z", false},
		{"UTC morning before local midnight", "2025-06-01T18:29:59.000Z", false},
		{"middle of the report day", "2025-06-02T06:15:00.000Z", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := []RawEvent{{Action: "pushed to", ProjectID: 1, CreatedAt: tc.createdAt}}
			pushes := FilterPushes(testUser, events, testDay, testOffset)
			if tc.want {
				assert.Len(t, pushes, 1)
			} else {
				assert.Empty(t, pushes)
			}
		})
	}
}

func TestFilterPushes_ConvertsToLocalTime(t *testing.T) {
	events := []RawEvent{
		{Action: "pushed to", ProjectID: 1, CreatedAt: "2025-06-01T19:00:00.000Z", Branch: "main"},
	}

	pushes := FilterPushes(testUser, events, testDay, testOffset)

	assert.Len(t, pushes, 1)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 30, 0, 0, time.UTC), pushes[0].LocalTime)
	assert.Equal(t, "12:30 AM", Clock(pushes[0].LocalTime))
}

func TestFilterPushes_SkipsMalformedTimestamps(t *testing.T) {
	events := []RawEvent{
		{Action: "pushed to", ProjectID: 1, CreatedAt: "not-a-timestamp"},
		{Action: "pushed to", ProjectID: 2, CreatedAt: "2025-06-02T06:00:00.000Z"},
		{Action: "pushed to", ProjectID: 3, CreatedAt: ""},
	}

	pushes := FilterPushes(testUser, events, testDay, testOffset)

	assert.Len(t, pushes, 1)
	assert.Equal(t, int64(2), pushes[0].ProjectID)
}

func TestFilterPushes_MissingBranchStillAccepted(t *testing.T) {
	events := []RawEvent{
		{Action: "pushed to", ProjectID: 1, CreatedAt: "2025-06-02T06:00:00.000Z"},
	}

	pushes := FilterPushes(testUser, events, testDay, testOffset)

	assert.Len(t, pushes, 1)
	assert.Equal(t, "", pushes[0].Branch)
}

func TestFilterPushes_PreservesSourceOrder(t *testing.T) {
	events := []RawEvent{
		{Action: "pushed to", ProjectID: 3, CreatedAt: "2025-06-02T10:00:00.000Z"},
		{Action: "pushed to", ProjectID: 2, CreatedAt: "2025-06-02T08:00:00.000Z"},
		{Action: "pushed to", ProjectID: 1, CreatedAt: "2025-06-02T06:00:00.000Z"},
	}

	pushes := FilterPushes(testUser, events, testDay, testOffset)

	assert.Len(t, pushes, 3)
	assert.Equal(t, int64(3), pushes[0].ProjectID)
	assert.Equal(t, int64(2), pushes[1].ProjectID)
	assert.Equal(t, int64(1), pushes[2].ProjectID)
}

func TestParseOffset(t *testing.T) {
	testCases := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"+05:30", 5*time.Hour + 30*time.Minute, false},
		{"05:30", 5*time.Hour + 30*time.Minute, false},
		{"-08:00", -8 * time.Hour, false},
		{"+00:00", 0, false},
		{"", DefaultUTCOffset, false},
		{"late", 0, true},
		{"+15:00", 0, true},
		{"+05:75", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseOffset(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
