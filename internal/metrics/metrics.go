// Package metrics declares the service's prometheus collectors. Register must
// be called once at startup before the first request.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "todoapi_requests_total", Help: "HTTP requests served"},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todoapi_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	AuthRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "todoapi_auth_rejections_total", Help: "Requests rejected by the auth gateway"},
		[]string{"auth_method", "reason"},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "todoapi_active_sessions", Help: "Live server-side sessions"},
	)
	CredentialResets = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "todoapi_credential_resets_total", Help: "Runtime auth config and user registry resets"},
		[]string{"kind"},
	)
)

func Register() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, AuthRejections, ActiveSessions, CredentialResets)
}
