package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_mock_http_request_duration_seconds",
			Help:    "Duration of requests served by the store mock",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mock_http_requests_total",
			Help: "Total number of requests served by the store mock",
		},
		[]string{"method", "route", "status"},
	)
)
