package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gateway_retries_total",
			Help: "Total number of store gateway retry attempts",
		},
		[]string{"service", "method", "code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_gateway_request_duration_seconds",
			Help:    "Duration of store gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)

	GatewayThrottledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_gateway_throttled_total",
			Help: "Requests abandoned while waiting for the outbound rate limiter",
		},
		[]string{"service", "method"},
	)
)
