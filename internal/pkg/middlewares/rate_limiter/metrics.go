package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "store_mock_rate_limit_exceeded_total",
		Help: "Total number of store mock requests rejected with 429",
	},
	[]string{"method", "route"},
)
