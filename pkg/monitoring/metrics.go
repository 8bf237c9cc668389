package monitoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector manages Prometheus metrics for the service.
// All recording methods are safe to call on a nil receiver, so components can
// hold an optional collector without guarding every call site.
type MetricsCollector struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	evaluationCyclesTotal   prometheus.Counter
	evaluationCycleDuration prometheus.Histogram
	alertsGeneratedTotal    *prometheus.CounterVec
	wsActiveConnections     prometheus.Gauge
}

// NewMetricsCollector creates and registers the service metric set.
func NewMetricsCollector(serviceName string) *MetricsCollector {
	// Prometheus metric names cannot contain hyphens.
	sanitized := strings.ReplaceAll(serviceName, "-", "_")

	mc := &MetricsCollector{serviceName: sanitized}

	mc.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: sanitized + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	mc.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    sanitized + "_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	mc.evaluationCyclesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: sanitized + "_evaluation_cycles_total",
			Help: "Total number of alert evaluation cycles run",
		},
	)

	mc.evaluationCycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    sanitized + "_evaluation_cycle_duration_seconds",
			Help:    "Alert evaluation cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	mc.alertsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: sanitized + "_alerts_generated_total",
			Help: "Total number of alerts generated",
		},
		[]string{"kind", "severity"},
	)

	mc.wsActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: sanitized + "_ws_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	prometheus.MustRegister(
		mc.httpRequestsTotal,
		mc.httpRequestDuration,
		mc.evaluationCyclesTotal,
		mc.evaluationCycleDuration,
		mc.alertsGeneratedTotal,
		mc.wsActiveConnections,
	)

	return mc
}

// ObserveEvaluationCycle records one completed evaluation cycle.
func (mc *MetricsCollector) ObserveEvaluationCycle(duration time.Duration) {
	if mc == nil {
		return
	}
	mc.evaluationCyclesTotal.Inc()
	mc.evaluationCycleDuration.Observe(duration.Seconds())
}

// AlertGenerated records one generated alert by kind and severity.
func (mc *MetricsCollector) AlertGenerated(kind, severity string) {
	if mc == nil {
		return
	}
	mc.alertsGeneratedTotal.WithLabelValues(kind, severity).Inc()
}

// WSConnectionOpened increments the active WebSocket connection gauge.
func (mc *MetricsCollector) WSConnectionOpened() {
	if mc == nil {
		return
	}
	mc.wsActiveConnections.Inc()
}

// WSConnectionClosed decrements the active WebSocket connection gauge.
func (mc *MetricsCollector) WSConnectionClosed() {
	if mc == nil {
		return
	}
	mc.wsActiveConnections.Dec()
}

// MetricsMiddleware returns gin middleware that records HTTP metrics.
func (mc *MetricsCollector) MetricsMiddleware() gin.HandlerFunc {
	if mc == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		mc.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		mc.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
	}
}

// Handler returns the Prometheus metrics HTTP handler wrapped for gin.
func (mc *MetricsCollector) Handler() gin.HandlerFunc {
	handler := promhttp.Handler()
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}
