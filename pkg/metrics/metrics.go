package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client-side instrumentation: how often each screen
// fetches its collection and how its submissions fare.
type Metrics struct {
	FetchesTotal   *prometheus.CounterVec
	FetchDuration  *prometheus.HistogramVec
	SubmitsTotal   *prometheus.CounterVec
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all metrics on the given registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screen_fetches_total",
			Help:      "Collection fetches per screen and outcome",
		}, []string{"screen", "status"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "screen_fetch_duration_seconds",
			Help:      "Time spent replacing a screen's collection",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"screen"}),
		SubmitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submits_total",
			Help:      "Form submissions per screen, operation and outcome",
		}, []string{"screen", "operation", "status"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Outbound requests to the remote collection API",
		}, []string{"entity", "method", "status"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Latency of remote collection API calls",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"entity", "method"}),
	}
}
