package report

import (
	"fmt"
	"strings"
	"time"
)

// pushAction is the exact classification GitLab uses for branch pushes.
// Other push-like actions (tag pushes, force pushes with their own names)
// are deliberately not matched.
const pushAction = "pushed to"

// DefaultUTCOffset is the report timezone when none is configured (IST).
const DefaultUTCOffset = 5*time.Hour + 30*time.Minute

// FilterPushes keeps the push events that happened on day in the timezone
// implied by offset. Timestamps arrive in UTC; day is compared on calendar
// date only. Source order is preserved, events with unparseable timestamps
// are skipped.
func FilterPushes(user Identity, events []RawEvent, day time.Time, offset time.Duration) []PushEvent {
	var pushes []PushEvent
	for _, ev := range events {
		if ev.Action != pushAction {
			continue
		}
		local, err := localEventTime(ev, offset)
		if err != nil {
			continue
		}
		if !sameDay(local, day) {
			continue
		}
		pushes = append(pushes, PushEvent{
			User:      user,
			ProjectID: ev.ProjectID,
			Branch:    ev.Branch,
			LocalTime: local,
		})
	}
	return pushes
}

func localEventTime(ev RawEvent, offset time.Duration) (time.Time, error) {
	created, err := time.Parse(time.RFC3339, ev.CreatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedEvent, ev.CreatedAt)
	}
	return created.UTC().Add(offset), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Clock formats t on the 12-hour clock used throughout the reports.
func Clock(t time.Time) string {
	return t.Format("03:04 PM")
}

// Today returns the current calendar date in the timezone implied by offset.
func Today(offset time.Duration) time.Time {
	now := time.Now().UTC().Add(offset)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseOffset parses a UTC offset such as "+05:30", "-08:00" or "05:30".
func ParseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultUTCOffset, nil
	}
	sign := time.Duration(1)
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid UTC offset %q (want HH:MM)", s)
	}
	if hours < 0 || hours > 14 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("UTC offset %q out of range", s)
	}
	return sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), nil
}
