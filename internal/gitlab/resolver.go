package gitlab

import (
	"context"
	"errors"
	"sync"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

// NameResolver resolves project IDs to display names with a per-run cache.
// The same project recurs across many push events, so each distinct ID hits
// the API at most once per run.
type NameResolver struct {
	client *Client
	mu     sync.Mutex
	cache  map[int64]report.ProjectName
}

func NewNameResolver(client *Client) *NameResolver {
	return &NameResolver{
		client: client,
		cache:  make(map[int64]report.ProjectName),
	}
}

var _ report.ProjectResolver = (*NameResolver)(nil)

// ResolveProject returns the cached name or performs a single lookup.
// The lock is held across the lookup so parallel batch workers never
// duplicate a remote call for the same project.
func (r *NameResolver) ResolveProject(ctx context.Context, projectID int64) report.ProjectName {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.cache[projectID]; ok {
		return name
	}
	name := r.lookup(ctx, projectID)
	r.cache[projectID] = name
	return name
}

func (r *NameResolver) lookup(ctx context.Context, projectID int64) report.ProjectName {
	name, err := r.client.ProjectName(ctx, projectID)
	switch {
	case err == nil:
		return report.ResolvedProject(name)
	case errors.Is(err, report.ErrProjectNotFound):
		return report.ProjectName{Resolution: report.NotFound}
	case errors.Is(err, report.ErrProjectForbidden):
		return report.ProjectName{Resolution: report.AccessDenied}
	default:
		return report.ProjectName{Resolution: report.Unknown}
	}
}
