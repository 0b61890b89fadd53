// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "registrar"

// Metrics bundles the application collectors on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	listDuration  *prometheus.HistogramVec
	listResults   *prometheus.HistogramVec
	cascadeDetach *prometheus.CounterVec
}

// New registers the collectors on a fresh registry together with the Go and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		listDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_query_duration_seconds",
			Help:      "Count plus page query latency per entity.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity"}),
		listResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_query_matches",
			Help:      "Total matching rows per list query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"entity"}),
		cascadeDetach: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_detached_total",
			Help:      "Child rows detached by parent deletions.",
		}, []string{"parent"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.listDuration,
		m.listResults,
		m.cascadeDetach,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware records request counts and latency. Routes are labelled by their pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveList records one executed list query.
func (m *Metrics) ObserveList(entity string, elapsed time.Duration, total int64) {
	if m == nil {
		return
	}
	m.listDuration.WithLabelValues(entity).Observe(elapsed.Seconds())
	m.listResults.WithLabelValues(entity).Observe(float64(total))
}

// AddDetached counts children detached by a cascade delete of parent.
func (m *Metrics) AddDetached(parent string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.cascadeDetach.WithLabelValues(parent).Add(float64(n))
}
