// Package httpx is the shared HTTP plumbing: status-aware errors, optional
// retry with backoff, and a JSON convenience wrapper. The catalog fetch runs
// it with retries disabled; batch tooling uses the default policy.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPError carries status/body for non-2xx responses.
// It lets callers decide if/when to retry.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 900))
}

// StatusOf returns the HTTP status behind err, or 0 when err is not an
// HTTPError.
func StatusOf(err error) int {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.StatusCode
	}
	return 0
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// Policy controls retry behavior.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// RetryStatuses marks statuses worth another attempt. 5xx always
	// qualifies when Retry5xx is set.
	Retry5xx      bool
	RetryStatuses map[int]bool
}

// DefaultPolicy mirrors what the upstream providers tolerate: exponential
// backoff with jitter, honoring Retry-After.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 8,
		BaseDelay:   700 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Retry5xx:    true,
		RetryStatuses: map[int]bool{
			http.StatusTooManyRequests: true,
			http.StatusRequestTimeout:  true,
		},
	}
}

// NoRetry is a single-attempt policy. Failures surface immediately.
func NoRetry() Policy {
	return Policy{MaxAttempts: 1}
}

// Do executes a request (rebuilt per attempt by buildReq) under the given
// policy. The body is always drained so the transport can reuse the
// connection. Non-2xx results come back as *HTTPError.
func Do(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	pol Policy,
) ([]byte, error) {
	if pol.MaxAttempts <= 0 {
		pol = DefaultPolicy()
	}
	if pol.BaseDelay <= 0 {
		pol.BaseDelay = 700 * time.Millisecond
	}
	if pol.MaxDelay <= 0 {
		pol.MaxDelay = 30 * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= pol.MaxAttempts; attempt++ {
		req, err := buildReq(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			if !retryableNetErr(err) || attempt == pol.MaxAttempts {
				return nil, err
			}
			lastErr = err
			if err := sleepBackoff(ctx, attempt, pol, 0); err != nil {
				return nil, err
			}
			continue
		}

		body, readErr := readAndClose(resp.Body)
		if readErr != nil {
			if !retryableNetErr(readErr) || attempt == pol.MaxAttempts {
				return body, readErr
			}
			lastErr = readErr
			if err := sleepBackoff(ctx, attempt, pol, 0); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		herr := &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
		if !retryableStatus(resp.StatusCode, pol) || attempt == pol.MaxAttempts {
			return body, herr
		}
		lastErr = herr
		if err := sleepBackoff(ctx, attempt, pol, ParseRetryAfter(resp)); err != nil {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.New("httpx: request failed")
}

// DoJSON runs Do and unmarshals the body into out (skipped when out is nil).
func DoJSON(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	out any,
	pol Policy,
) error {
	body, err := Do(ctx, client, buildReq, pol)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("json parse error: %w body=%s", err, snippet(body, 900))
	}
	return nil
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func retryableStatus(code int, pol Policy) bool {
	if pol.RetryStatuses[code] {
		return true
	}
	return pol.Retry5xx && code >= 500 && code <= 599
}

func retryableNetErr(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return nerr.Timeout()
	}
	// transient I/O wrapped in url.Error and friends
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe") || strings.Contains(msg, "eof")
}

func sleepBackoff(ctx context.Context, attempt int, pol Policy, retryAfter time.Duration) error {
	sleep := retryAfter
	if sleep <= 0 {
		sleep = pol.BaseDelay * time.Duration(1<<(attempt-1))
		if sleep > pol.MaxDelay {
			sleep = pol.MaxDelay
		}
		// jitter 0..400ms
		sleep += time.Duration(rand.Intn(400)) * time.Millisecond
	}

	t := time.NewTimer(sleep)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ParseRetryAfter parses a Retry-After header (seconds or HTTP date).
// Returns 0 when the header is missing or unusable.
func ParseRetryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
