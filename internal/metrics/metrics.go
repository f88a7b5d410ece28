package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NormalizerTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_normalizer_tier_total",
			Help: "Number of model replies normalized, by the tier that produced the result",
		},
		[]string{"tier"},
	)

	UpstreamCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_upstream_calls_total",
			Help: "Number of language model calls, by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "suggestion_upstream_duration_seconds",
			Help: "Duration of language model calls in seconds",
		},
		[]string{"endpoint"},
	)

	ImageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_resolutions_total",
			Help: "Number of image resolutions, by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests served, by method, route and status class",
		},
		[]string{"method", "route", "status"},
	)
)
