package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы вызова внешнего сервиса
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panoprobe_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "panoprobe_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panoprobe_upstream_requests_total",
			Help: "Total number of calls to location data services",
		},
		[]string{"service", "outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "panoprobe_upstream_request_duration_seconds",
			Help:    "Duration of calls to location data services in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// CircuitBreakerState: 0 - closed, 1 - half-open, 2 - open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "panoprobe_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panoprobe_cache_requests_total",
			Help: "Total number of cache lookups",
		},
		[]string{"cache", "result"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panoprobe_analyses_total",
			Help: "Total number of completed difficulty analyses",
		},
		[]string{"difficulty", "method"},
	)

	WorkerMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panoprobe_worker_messages_total",
			Help: "Total number of stream messages handled by workers",
		},
		[]string{"worker", "outcome"},
	)
)

// ObserveUpstream записывает результат и длительность вызова внешнего сервиса
func ObserveUpstream(service, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(service, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(started).Seconds())
}

// ObserveHTTP записывает метрики HTTP-запроса
func ObserveHTTP(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAnalysis учитывает итоговую сложность анализа
func RecordAnalysis(difficulty int, method string) {
	AnalysesTotal.WithLabelValues(strconv.Itoa(difficulty), method).Inc()
}

// RecordCache учитывает попадание или промах кеша
func RecordCache(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}
