package conn

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bigcommerce_client",
			Name:      "requests_total",
			Help:      "HTTP exchanges issued, including retries and redirect hops.",
		},
		[]string{"method"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bigcommerce_client",
			Name:      "retries_total",
			Help:      "Requests reissued after a retryable failure.",
		},
		[]string{"reason"},
	)

	redirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bigcommerce_client",
			Name:      "redirects_total",
			Help:      "Redirects followed manually.",
		},
	)

	rateLimitWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bigcommerce_client",
			Name:      "rate_limit_wait_seconds_total",
			Help:      "Total time spent sleeping on server rate-limit hints.",
		},
	)
)
