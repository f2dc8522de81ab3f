package report

import (
	"context"
	"time"
)

// Identity is a username resolved against the remote service. Found is false
// when no matching account exists; the rest of the pipeline still runs and
// produces an empty summary for that user.
type Identity struct {
	Username string `json:"username"`
	ID       int64  `json:"id,omitempty"`
	Found    bool   `json:"found"`
}

// RawEvent is one activity record as returned by the remote service.
// CreatedAt is kept as the wire string and parsed during filtering so a
// malformed timestamp skips a single event instead of failing a whole fetch.
type RawEvent struct {
	Action    string
	ProjectID int64
	CreatedAt string
	Branch    string
}

// PushEvent is a RawEvent that survived filtering: a push on the report date,
// with its timestamp already shifted into the report timezone.
type PushEvent struct {
	User      Identity
	ProjectID int64
	Branch    string
	LocalTime time.Time
}

type EventSource interface {
	Name() string
	ResolveUser(ctx context.Context, username string) (Identity, error)
	Events(ctx context.Context, identity Identity) ([]RawEvent, error)
}

// ProjectResolver maps a project ID to a display name. Every outcome is a
// ProjectName value, never an error, so callers render a fallback label
// instead of special-casing failures.
type ProjectResolver interface {
	ResolveProject(ctx context.Context, projectID int64) ProjectName
}
