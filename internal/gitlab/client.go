package gitlab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

const DefaultBaseURL = "https://gitlab.com/api/v4"

// HTTPClient allows swapping the transport in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
	limiter    *rate.Limiter
}

func NewClient(baseURL, token string, httpClient HTTPClient) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
		// Batch runs hit /projects/:id once per distinct project; keep the
		// request rate polite toward shared instances.
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}
}

// User is a GitLab account as returned by /users.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Event is one entry of a user's event stream.
type Event struct {
	ActionName string    `json:"action_name"`
	ProjectID  int64     `json:"project_id"`
	CreatedAt  string    `json:"created_at"`
	PushData   *PushData `json:"push_data"`
}

type PushData struct {
	Ref string `json:"ref"`
}

type project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LookupUser resolves a username to its account ID by exact match.
// Both an empty result and a failed call report as ErrUserNotFound.
func (c *Client) LookupUser(ctx context.Context, username string) (int64, error) {
	var users []User
	endpoint := fmt.Sprintf("%s/users?username=%s", c.baseURL, url.QueryEscape(username))
	if err := c.get(ctx, endpoint, &users); err != nil {
		return 0, fmt.Errorf("%w: %q: %v", report.ErrUserNotFound, username, err)
	}
	if len(users) == 0 {
		return 0, fmt.Errorf("%w: %q", report.ErrUserNotFound, username)
	}
	return users[0].ID, nil
}

// ListEvents retrieves the user's recent event stream, most recent first.
func (c *Client) ListEvents(ctx context.Context, userID int64) ([]Event, error) {
	var events []Event
	endpoint := fmt.Sprintf("%s/users/%d/events", c.baseURL, userID)
	if err := c.get(ctx, endpoint, &events); err != nil {
		return nil, fmt.Errorf("%w: user %d: %v", report.ErrFetchFailed, userID, err)
	}
	return events, nil
}

// ProjectName looks up a project's display name. Not-found and forbidden
// outcomes map to the corresponding sentinel errors.
func (c *Client) ProjectName(ctx context.Context, projectID int64) (string, error) {
	var p project
	endpoint := fmt.Sprintf("%s/projects/%d", c.baseURL, projectID)
	if err := c.get(ctx, endpoint, &p); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusNotFound:
				return "", fmt.Errorf("%w: %d", report.ErrProjectNotFound, projectID)
			case http.StatusForbidden:
				return "", fmt.Errorf("%w: %d", report.ErrProjectForbidden, projectID)
			}
		}
		return "", err
	}
	return p.Name, nil
}

func (c *Client) get(ctx context.Context, endpoint string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &apiError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.Status, e.Body)
}
