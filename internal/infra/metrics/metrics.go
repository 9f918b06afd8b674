package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techvault_store_operations_total",
		Help: "Collection operations by entity key, operation and result.",
	}, []string{"entity", "op", "result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techvault_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "techvault_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	MockCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techvault_mockapi_calls_total",
		Help: "Simulated API calls by method and outcome.",
	}, []string{"method", "result"})

	DigestsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techvault_digests_total",
		Help: "Expiry digests by result.",
	}, []string{"result"})
)
