package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics records aggregation query durations per report.
type ReportMetrics struct {
	duration *prometheus.HistogramVec
}

// NewReportMetrics registers the report metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	if reg == nil {
		return &ReportMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_query_duration_seconds",
		Help:    "Duration of aggregation report queries in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	reg.MustRegister(duration)
	return &ReportMetrics{duration: duration}
}

// ObserveDuration records the duration for the named report.
func (r *ReportMetrics) ObserveDuration(report string, duration time.Duration) {
	if r == nil || r.duration == nil {
		return
	}
	r.duration.WithLabelValues(normalizeLabel(report)).Observe(duration.Seconds())
}
