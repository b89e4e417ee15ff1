package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"coursefeed/internal/metrics"
)

// DefaultProxyTimeout bounds one upstream round trip.
const DefaultProxyTimeout = 30 * time.Second

// RFC 7230 hop-by-hop headers; dropped in both directions.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Proxy forwards /api/proxy/<path> requests verbatim (method, headers minus
// hop-by-hop ones, body) to the learn backend. It exists so a browser served
// over HTTPS can reach a plain-HTTP backend without mixed-content blocking.
// Upstream failures come back as a JSON envelope, 502 for transport errors
// and 504 when the timeout fires.
type Proxy struct {
	Target  string
	Timeout time.Duration
	Log     *zap.Logger
	Metrics *metrics.Registry
	HTTP    *http.Client
}

func NewProxy(target string, log *zap.Logger) *Proxy {
	return &Proxy{
		Target:  strings.TrimSuffix(target, "/"),
		Timeout: DefaultProxyTimeout,
		Log:     log,
		// sin Timeout propio: el deadline viene del context
		HTTP: &http.Client{},
	}
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if p.Metrics != nil {
		p.Metrics.ProxyRequests.Inc()
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultProxyTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	upstreamURL := p.Target + upstreamPath(r)

	req, err := http.NewRequestWithContext(ctx, r.Method, upstreamURL, r.Body)
	if err != nil {
		p.fail(w, http.StatusBadGateway, "invalid upstream request")
		return
	}
	copyHeaders(req.Header, r.Header)

	start := time.Now()
	resp, err := p.HTTP.Do(req)
	if p.Metrics != nil {
		p.Metrics.ProxyUpstreamSec.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		status := http.StatusBadGateway
		msg := "upstream request failed"
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			status = http.StatusGatewayTimeout
			msg = "upstream request timed out"
		}
		if p.Log != nil {
			p.Log.Warn("proxy upstream error",
				zap.String("url", upstreamURL),
				zap.Error(err))
		}
		p.fail(w, status, msg)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

func (p *Proxy) fail(w http.ResponseWriter, status int, msg string) {
	if p.Metrics != nil {
		p.Metrics.ProxyFailures.Inc()
	}
	writeError(w, status, msg)
}

// upstreamPath strips the proxy prefix, keeping path and query intact.
func upstreamPath(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, "/api/proxy")
	if path == "" {
		path = "/"
	}
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}
	return path
}

// copyHeaders copies everything except hop-by-hop headers, including any
// extra ones the Connection header names.
func copyHeaders(dst, src http.Header) {
	drop := map[string]bool{}
	for _, h := range hopByHopHeaders {
		drop[h] = true
	}
	for _, v := range src.Values("Connection") {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				drop[http.CanonicalHeaderKey(name)] = true
			}
		}
	}
	for k, vs := range src {
		if drop[http.CanonicalHeaderKey(k)] {
			continue
		}
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}
