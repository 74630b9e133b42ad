package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Namespace = "site_uptime"

	SubReport = "report"
	SubCache  = "tzcache"
	SubHTTP   = "http"
)

// CounterOpts is an alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is an alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets re-exports prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// NewCounterVec registers a CounterVec with the default registry.
var NewCounterVec = promauto.NewCounterVec

// NewHistogramVec registers a HistogramVec with the default registry.
var NewHistogramVec = promauto.NewHistogramVec

// NewCounter registers a Counter with the default registry.
var NewCounter = promauto.NewCounter

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
