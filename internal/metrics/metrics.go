// Package metrics defines the Prometheus collectors exported by the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_validation_rejections_total",
			Help: "Total number of requests rejected by parameter validation",
		},
		[]string{"param"},
	)

	ActivitySinkErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_activity_sink_errors_total",
			Help: "Total number of activity sink failures by sink",
		},
		[]string{"sink"},
	)

	ActivityReportsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_activity_reports_dropped_total",
			Help: "Total number of activity reports dropped because the queue was full",
		},
	)
)

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
