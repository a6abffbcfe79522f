package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records dashboard metrics with Prometheus.
type Recorder struct {
	fetchDuration   *prometheus.HistogramVec
	headlines       prometheus.Counter
	duplicatePairs  prometheus.Counter
	viewBuilds      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a recorder whose collectors are registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_upstream_fetch_duration_seconds",
				Help:    "Duration of upstream fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source", "outcome"},
		),
		headlines: f.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_headlines_fetched_total",
				Help: "Total number of headlines kept after date filtering",
			},
		),
		duplicatePairs: f.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_duplicate_pairs_total",
				Help: "Total number of near-duplicate headline pairs counted",
			},
		),
		viewBuilds: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_view_builds_total",
				Help: "Total number of aligned views built, by outcome",
			},
			[]string{"outcome"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"route", "method", "class"},
		),
	}
}

// RecordFetch records an upstream fetch.
func (r *Recorder) RecordFetch(source, outcome string, seconds float64) {
	r.fetchDuration.WithLabelValues(source, outcome).Observe(seconds)
}

// RecordHeadlines adds n fetched headlines.
func (r *Recorder) RecordHeadlines(n int) {
	r.headlines.Add(float64(n))
}

// RecordDuplicatePairs adds n counted duplicate pairs.
func (r *Recorder) RecordDuplicatePairs(n int) {
	r.duplicatePairs.Add(float64(n))
}

// RecordViewBuild records the outcome of one view build.
func (r *Recorder) RecordViewBuild(outcome string) {
	r.viewBuilds.WithLabelValues(outcome).Inc()
}

// RecordRequest records one HTTP request.
func (r *Recorder) RecordRequest(route, method string, status int, seconds float64) {
	r.requestDuration.WithLabelValues(route, method, statusClass(status)).Observe(seconds)
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
