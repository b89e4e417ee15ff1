// Package learnapi is the HTTP client for the learn backend's course-page
// endpoint.
package learnapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coursefeed/internal/httpx"
)

// Client talks to the learn backend.
//
// When ProxyBase is set, requests are routed through the same-origin reverse
// proxy instead of hitting BaseURL directly. That is a deployment branch to
// dodge mixed-content blocking (HTTPS app, plain-HTTP backend), not a
// failover path.
type Client struct {
	BaseURL   string
	ProxyBase string

	// Token supplies the bearer token, if any. Called per request so a
	// refreshed token is picked up without rebuilding the client.
	Token func() string

	// Policy defaults to a single attempt: the course page is fetched on
	// demand and the caller decides what a failure means.
	Policy httpx.Policy

	HTTP *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Policy:  httpx.NoRetry(),
		HTTP: &http.Client{
			Timeout: 2 * time.Minute, // por-request
		},
	}
}

// CoursePageData fetches the raw course-page payload for one student.
// The decoded JSON is returned as-is; shape detection and mapping are the
// caller's job. Non-2xx statuses surface as *httpx.HTTPError.
func (c *Client) CoursePageData(ctx context.Context, studentID string) (any, error) {
	endpoint := c.endpoint("/api/android/coursepagedata/" + url.PathEscape(studentID))

	var out any
	err := httpx.DoJSON(ctx, c.HTTP, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.Token != nil {
			if tok := strings.TrimSpace(c.Token()); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
		}
		return req, nil
	}, &out, c.Policy)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) endpoint(path string) string {
	if c.ProxyBase != "" {
		return strings.TrimSuffix(c.ProxyBase, "/") + path
	}
	return c.BaseURL + path
}
