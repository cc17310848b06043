package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ReportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_run_duration_seconds",
		Help:    "Time spent fetching and composing a report",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	ReportRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_runs_total",
		Help: "Total report executions",
	}, []string{"report"})

	ReportFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_failures_total",
		Help: "Report executions that ended in an error",
	}, []string{"report"})
)

func Init() {
	prometheus.MustRegister(ReportDuration, ReportRuns, ReportFailures)
}
