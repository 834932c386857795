package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	extractionReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "remitscan",
			Name:      "extraction_requests_total",
			Help:      "Total extraction requests by result (success, rejected, timeout, upstream_error, transport_error, config_error)",
		},
		[]string{"result"},
	)

	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "remitscan",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of upstream API calls by model",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	upstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "remitscan",
			Name:      "upstream_errors_total",
			Help:      "Upstream failures by class (auth, rate_limited, bad_request, timeout, transport, other)",
		},
		[]string{"class"},
	)
)

func init() {
	prometheus.MustRegister(extractionReqs, upstreamLatency, upstreamErrors)
}

// ObserveRequest records the terminal result of one extraction request.
func ObserveRequest(result string) {
	extractionReqs.WithLabelValues(result).Inc()
}

// ObserveUpstream records the duration of one upstream call.
func ObserveUpstream(model string, d time.Duration) {
	upstreamLatency.WithLabelValues(model).Observe(d.Seconds())
}

// ObserveUpstreamError records an upstream failure class.
func ObserveUpstreamError(class string) {
	upstreamErrors.WithLabelValues(class).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
