package gitlab

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

func TestNameResolver_CachesLookups(t *testing.T) {
	requests := 0
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			requests++
			return jsonResponse(http.StatusOK, `{"id": 10, "name": "widget"}`), nil
		},
	}
	resolver := NewNameResolver(NewClient("", "test-token", mockHTTP))

	first := resolver.ResolveProject(context.Background(), 10)
	second := resolver.ResolveProject(context.Background(), 10)

	assert.Equal(t, 1, requests)
	assert.Equal(t, first, second)
	assert.Equal(t, "widget", first.Name)
}

func TestNameResolver_CachesFailuresToo(t *testing.T) {
	requests := 0
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			requests++
			return jsonResponse(http.StatusNotFound, `{"message":"404"}`), nil
		},
	}
	resolver := NewNameResolver(NewClient("", "test-token", mockHTTP))

	first := resolver.ResolveProject(context.Background(), 10)
	second := resolver.ResolveProject(context.Background(), 10)

	assert.Equal(t, 1, requests)
	assert.Equal(t, report.NotFound, first.Resolution)
	assert.Equal(t, first, second)
}

func TestNameResolver_StatusMapping(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantKind    report.Resolution
		wantDisplay string
	}{
		{"resolved", http.StatusOK, `{"name": "widget"}`, report.Resolved, "widget"},
		{"not found", http.StatusNotFound, `{}`, report.NotFound, "Project not found or private"},
		{"forbidden", http.StatusForbidden, `{}`, report.AccessDenied, "Access denied"},
		{"server error", http.StatusInternalServerError, `{}`, report.Unknown, "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockHTTP := &mockHTTPClient{
				doFunc: func(req *http.Request) (*http.Response, error) {
					return jsonResponse(tc.status, tc.body), nil
				},
			}
			resolver := NewNameResolver(NewClient("", "test-token", mockHTTP))

			name := resolver.ResolveProject(context.Background(), 10)

			assert.Equal(t, tc.wantKind, name.Resolution)
			assert.Equal(t, tc.wantDisplay, name.Display())
		})
	}
}

func TestNameResolver_ConcurrentAccessSingleLookup(t *testing.T) {
	var mu sync.Mutex
	requests := 0
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			mu.Lock()
			requests++
			mu.Unlock()
			return jsonResponse(http.StatusOK, `{"name": "widget"}`), nil
		},
	}
	resolver := NewNameResolver(NewClient("", "test-token", mockHTTP))

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver.ResolveProject(context.Background(), 10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, requests)
}
