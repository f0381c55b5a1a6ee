package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Abdullah-819/786Times/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	storageDuration   *prometheus.HistogramVec
	storageOps        *prometheus.CounterVec
	statusComputed    *prometheus.CounterVec
	reminders         *prometheus.CounterVec
	activeStreams     prometheus.Gauge
	refreshSubscribed prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kv_operation_duration_seconds",
		Help:    "Latency of key-value storage operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "op"})

	storageOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kv_operations_total",
		Help: "Key-value storage operations by outcome",
	}, []string{"backend", "op", "outcome"})

	statusComputed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lecture_status_computed_total",
		Help: "Lecture status computations by state",
	}, []string{"state"})

	reminders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reminders_total",
		Help: "Reminder lifecycle events by outcome",
	}, []string{"outcome"})

	activeStreams := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "status_streams_active",
		Help: "Open server-sent status streams",
	})

	refreshSubscribed := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "refresh_subscriptions_active",
		Help: "Scheduled lecture status refreshes",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storageDuration, storageOps, statusComputed, reminders, activeStreams, refreshSubscribed, goroutines)

	return &MetricsService{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		storageDuration:   storageDuration,
		storageOps:        storageOps,
		statusComputed:    statusComputed,
		reminders:         reminders,
		activeStreams:     activeStreams,
		refreshSubscribed: refreshSubscribed,
	}
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveStorageOp records one key-value call.
func (m *MetricsService) ObserveStorageOp(backend, op string, duration time.Duration, outcome string) {
	if m == nil {
		return
	}
	m.storageDuration.WithLabelValues(backend, op).Observe(duration.Seconds())
	m.storageOps.WithLabelValues(backend, op, outcome).Inc()
}

// ObserveStatus counts a computed lecture status.
func (m *MetricsService) ObserveStatus(status models.TimeStatus) {
	if m == nil {
		return
	}
	state := "completed"
	switch {
	case status.IsActive:
		state = "active"
	case status.IsUpcoming:
		state = "upcoming"
	}
	m.statusComputed.WithLabelValues(state).Inc()
}

// ObserveReminder counts a reminder lifecycle event.
func (m *MetricsService) ObserveReminder(outcome string) {
	if m == nil {
		return
	}
	m.reminders.WithLabelValues(outcome).Inc()
}

// StreamOpened tracks an SSE client connecting; the returned func records
// its departure.
func (m *MetricsService) StreamOpened() func() {
	if m == nil {
		return func() {}
	}
	m.activeStreams.Inc()
	return m.activeStreams.Dec
}

// SetRefreshSubscriptions reports the scheduled refresh count.
func (m *MetricsService) SetRefreshSubscriptions(n int) {
	if m == nil {
		return
	}
	m.refreshSubscribed.Set(float64(n))
}
