package report

import "site-uptime-backend/internal/metrics"

var (
	jobsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "jobs_total",
			Help:      "Report jobs by final status.",
		},
		[]string{"status"},
	)

	jobDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "job_duration_seconds",
			Help:      "Wall time of report jobs from pickup to terminal status.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"status"},
	)

	sitesReported = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "sites_reported_total",
			Help:      "Rows written to report files.",
		},
		[]string{},
	)
)
