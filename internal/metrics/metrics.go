// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus instruments for the HTTP layer and the
// background jobs.
type Collector struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	viewsFlushed  prometheus.Counter
	postingsSwept prometheus.Counter
}

// NewCollector creates a Collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobport_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobport_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		viewsFlushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobport_views_flushed_total",
			Help: "Total posting views moved from Redis into the database",
		}),
		postingsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobport_postings_closed_total",
			Help: "Total postings closed by the deadline sweep",
		}),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.viewsFlushed,
		c.postingsSwept,
	)

	return c
}

// RecordViewsFlushed counts posting views drained into the database
func (c *Collector) RecordViewsFlushed(count int64) {
	c.viewsFlushed.Add(float64(count))
}

// RecordPostingsClosed counts postings closed by the deadline sweep
func (c *Collector) RecordPostingsClosed(count int64) {
	c.postingsSwept.Add(float64(count))
}

// Middleware instruments every request. The route template is used as the
// label, not the raw path, to keep cardinality bounded.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		c.httpRequests.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the metrics endpoint
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
