package gitlab

import (
	"context"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

// Source adapts Client to the report.EventSource contract.
type Source struct {
	Client *Client
}

func NewSource(client *Client) *Source {
	return &Source{Client: client}
}

var _ report.EventSource = (*Source)(nil)

func (s *Source) Name() string {
	return "GitLab"
}

func (s *Source) ResolveUser(ctx context.Context, username string) (report.Identity, error) {
	id, err := s.Client.LookupUser(ctx, username)
	if err != nil {
		return report.Identity{Username: username}, err
	}
	return report.Identity{Username: username, ID: id, Found: true}, nil
}

// Events returns the identity's raw event stream. An absent identity yields
// an empty stream without touching the API.
func (s *Source) Events(ctx context.Context, identity report.Identity) ([]report.RawEvent, error) {
	if !identity.Found {
		return nil, nil
	}

	events, err := s.Client.ListEvents(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	raw := make([]report.RawEvent, 0, len(events))
	for _, ev := range events {
		branch := ""
		if ev.PushData != nil {
			branch = ev.PushData.Ref
		}
		raw = append(raw, report.RawEvent{
			Action:    ev.ActionName,
			ProjectID: ev.ProjectID,
			CreatedAt: ev.CreatedAt,
			Branch:    branch,
		})
	}
	return raw, nil
}
