package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tradeaskill",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	UpstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tradeaskill",
		Name:      "upstream_requests_total",
		Help:      "Calls to the skills/users REST API by operation and outcome.",
	}, []string{"op", "outcome"})

	CatalogFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradeaskill",
		Name:      "catalog_fallbacks_total",
		Help:      "Times the bundled catalog was served because the skills endpoint failed.",
	})

	StorageParseErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradeaskill",
		Name:      "storage_parse_errors_total",
		Help:      "Persisted profiles that could not be decoded and were treated as absent.",
	})

	Registry = prometheus.NewRegistry()
)

func init() {
	Registry.MustRegister(HTTPRequests, UpstreamRequests, CatalogFallbacks, StorageParseErrors)
}

func ObserveUpstream(op, outcome string) {
	UpstreamRequests.WithLabelValues(op, outcome).Inc()
}

func ObserveHTTP(method, route string, status int) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
