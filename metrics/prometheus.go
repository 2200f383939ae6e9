package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusRecorder registers and returns a prometheus-backed recorder.
func NewPrometheusRecorder(reg prometheus.Registerer) Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seimoney",
			Name:      "requests_total",
			Help:      "SDK requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seimoney",
			Name:      "request_duration_seconds",
			Help:      "SDK request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	reg.MustRegister(requests, latency)

	return &PrometheusRecorder{
		requests: requests,
		latency:  latency,
	}
}

func (p *PrometheusRecorder) ObserveRequest(method, path string, status int, d time.Duration) {
	p.requests.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}).Inc()

	p.latency.With(prometheus.Labels{
		"method": method,
		"path":   path,
	}).Observe(d.Seconds())
}
