package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	CatalogFetches       prometheus.Counter
	CatalogFetchFailures prometheus.Counter

	ProxyRequests    prometheus.Counter
	ProxyFailures    prometheus.Counter
	ProxyUpstreamSec prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	fetches := prometheus.NewCounter(prometheus.CounterOpts{Name: "coursefeed_catalog_fetches_total"})
	fetchFails := prometheus.NewCounter(prometheus.CounterOpts{Name: "coursefeed_catalog_fetch_failures_total"})
	proxyReq := prometheus.NewCounter(prometheus.CounterOpts{Name: "coursefeed_proxy_requests_total"})
	proxyFail := prometheus.NewCounter(prometheus.CounterOpts{Name: "coursefeed_proxy_failures_total"})
	proxyDur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "coursefeed_proxy_upstream_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(fetches, fetchFails, proxyReq, proxyFail, proxyDur)
	return &Registry{
		reg:                  r,
		CatalogFetches:       fetches,
		CatalogFetchFailures: fetchFails,
		ProxyRequests:        proxyReq,
		ProxyFailures:        proxyFail,
		ProxyUpstreamSec:     proxyDur,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
