package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntityWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_entity_writes_total",
			Help: "Total number of successful entity writes",
		},
		[]string{"entity", "action"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
