package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// metricsNamespace prefixes every metric so this service's series stay
// distinguishable on a shared Prometheus.
const metricsNamespace = "user_service"

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status.",
		},
		[]string{"path", "method", "status"},
	)
	reqLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by route and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqLatency) }

// Metrics records a counter and a latency sample per request. Labels use the
// matched route pattern, not the raw URL, to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
