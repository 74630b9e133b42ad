package aggregator

import "site-uptime-backend/internal/metrics"

var chunkDuration = metrics.NewHistogramVec(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubReport,
		Name:      "chunk_duration_seconds",
		Help:      "Time spent fetching and reporting one chunk of sites.",
		Buckets:   metrics.DefBuckets,
	},
	[]string{},
)
