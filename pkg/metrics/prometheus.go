// Package metrics provides Prometheus metrics for the activities directory service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the activities service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Core Business Metrics - What really matters for a sign-up directory
	signupsTotal         prometheus.Counter
	unregistersTotal     prometheus.Counter
	signupRejections     *prometheus.CounterVec
	unregisterRejections *prometheus.CounterVec

	// Directory State Metrics
	activitiesTotal   prometheus.Gauge
	participantsTotal prometheus.Gauge
	rosterSize        *prometheus.GaugeVec
	rosterUtilization *prometheus.GaugeVec

	// Store Metrics - In-memory directory performance
	storeUpdateLatency prometheus.Histogram
	storeQueryLatency  prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mhs",
		subsystem:        "activities",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.signupsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "signups_total",
		Help:      "Total number of successful activity sign-ups",
	})

	m.unregistersTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unregisters_total",
		Help:      "Total number of successful roster removals",
	})

	m.signupRejections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "signup_rejections_total",
		Help:      "Total number of rejected sign-ups by reason",
	}, []string{"reason"})

	m.unregisterRejections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unregister_rejections_total",
		Help:      "Total number of rejected roster removals by reason",
	}, []string{"reason"})

	// Directory State Metrics
	m.activitiesTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "directory_activities",
		Help:      "Number of activities in the directory",
	})

	m.participantsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "directory_participants",
		Help:      "Total number of participants across all rosters",
	})

	m.rosterSize = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Current roster size per activity",
	}, []string{"activity"})

	m.rosterUtilization = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_utilization",
		Help:      "Roster size relative to max_participants per activity (0..1)",
	}, []string{"activity"})

	// Store Metrics
	m.storeUpdateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_update_latency_milliseconds",
		Help:      "Histogram of directory mutation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_latency_milliseconds",
		Help:      "Histogram of directory read latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	// Enhanced Error Metrics
	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of errors by error type and severity",
	}, []string{"error_type", "severity"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "error_latency_milliseconds",
		Help:      "Histogram of latency for requests that ended in an error",
		Buckets:   m.histogramBuckets,
	}, []string{"component", "error_type"})

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of garbage collector pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Manager methods. Each is a no-op when metrics are disabled.

// RecordSignup increments the successful sign-up counter.
func (m *Manager) RecordSignup() {
	if !m.enabled {
		return
	}
	m.signupsTotal.Inc()
}

// RecordUnregister increments the successful removal counter.
func (m *Manager) RecordUnregister() {
	if !m.enabled {
		return
	}
	m.unregistersTotal.Inc()
}

// RecordSignupRejection increments the rejected sign-up counter for a reason.
func (m *Manager) RecordSignupRejection(reason string) {
	if !m.enabled {
		return
	}
	m.signupRejections.WithLabelValues(reason).Inc()
}

// RecordUnregisterRejection increments the rejected removal counter for a reason.
func (m *Manager) RecordUnregisterRejection(reason string) {
	if !m.enabled {
		return
	}
	m.unregisterRejections.WithLabelValues(reason).Inc()
}

// UpdateActivitiesTotal sets the directory activity count gauge.
func (m *Manager) UpdateActivitiesTotal(count int) {
	if !m.enabled {
		return
	}
	m.activitiesTotal.Set(float64(count))
}

// UpdateParticipantsTotal sets the directory-wide participant count gauge.
func (m *Manager) UpdateParticipantsTotal(count int) {
	if !m.enabled {
		return
	}
	m.participantsTotal.Set(float64(count))
}

// UpdateRosterSize sets the per-activity roster size gauge.
func (m *Manager) UpdateRosterSize(activity string, size int) {
	if !m.enabled {
		return
	}
	m.rosterSize.WithLabelValues(activity).Set(float64(size))
}

// UpdateRosterUtilization sets the per-activity utilization gauge.
func (m *Manager) UpdateRosterUtilization(activity string, utilization float64) {
	if !m.enabled {
		return
	}
	m.rosterUtilization.WithLabelValues(activity).Set(utilization)
}

// RecordStoreUpdateLatency observes a directory mutation duration.
func (m *Manager) RecordStoreUpdateLatency(durationMs float64) {
	if !m.enabled {
		return
	}
	m.storeUpdateLatency.Observe(durationMs)
}

// RecordStoreQueryLatency observes a directory read duration.
func (m *Manager) RecordStoreQueryLatency(durationMs float64) {
	if !m.enabled {
		return
	}
	m.storeQueryLatency.Observe(durationMs)
}

// RecordHTTPRequest increments the HTTP request counter.
func (m *Manager) RecordHTTPRequest(endpoint, method, status string) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func (m *Manager) RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordErrorByEndpoint increments the per-endpoint error counter.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType increments the per-type error counter.
func (m *Manager) RecordErrorByType(errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorLatency observes the latency of a failed request.
func (m *Manager) RecordErrorLatency(component, errorType string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.errorLatency.WithLabelValues(component, errorType).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	if !m.enabled {
		return
	}
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes a GC pause duration.
func (m *Manager) RecordSystemGCPauseTime(durationMs float64) {
	if !m.enabled {
		return
	}
	m.systemGCPauseTime.Observe(durationMs)
}

// Package-level helpers that delegate to the global manager.

// RecordSignup increments the successful sign-up counter.
func RecordSignup() { globalManager.RecordSignup() }

// RecordUnregister increments the successful removal counter.
func RecordUnregister() { globalManager.RecordUnregister() }

// RecordSignupRejection increments the rejected sign-up counter for a reason.
func RecordSignupRejection(reason string) { globalManager.RecordSignupRejection(reason) }

// RecordUnregisterRejection increments the rejected removal counter for a reason.
func RecordUnregisterRejection(reason string) { globalManager.RecordUnregisterRejection(reason) }

// UpdateActivitiesTotal sets the directory activity count gauge.
func UpdateActivitiesTotal(count int) { globalManager.UpdateActivitiesTotal(count) }

// UpdateParticipantsTotal sets the directory-wide participant count gauge.
func UpdateParticipantsTotal(count int) { globalManager.UpdateParticipantsTotal(count) }

// UpdateRosterSize sets the per-activity roster size gauge.
func UpdateRosterSize(activity string, size int) { globalManager.UpdateRosterSize(activity, size) }

// UpdateRosterUtilization sets the per-activity utilization gauge.
func UpdateRosterUtilization(activity string, utilization float64) {
	globalManager.UpdateRosterUtilization(activity, utilization)
}

// RecordStoreUpdateLatency observes a directory mutation duration.
func RecordStoreUpdateLatency(durationMs float64) {
	globalManager.RecordStoreUpdateLatency(durationMs)
}

// RecordStoreQueryLatency observes a directory read duration.
func RecordStoreQueryLatency(durationMs float64) { globalManager.RecordStoreQueryLatency(durationMs) }

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.RecordHTTPRequest(endpoint, method, status)
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.RecordHTTPRequestDuration(endpoint, method, status, durationMs)
}

// RecordErrorByEndpoint increments the per-endpoint error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// RecordErrorByType increments the per-type error counter.
func RecordErrorByType(errorType, severity string) {
	globalManager.RecordErrorByType(errorType, severity)
}

// RecordErrorLatency observes the latency of a failed request.
func RecordErrorLatency(component, errorType string, durationMs float64) {
	globalManager.RecordErrorLatency(component, errorType, durationMs)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) { globalManager.UpdateSystemGoroutineCount(count) }

// RecordSystemGCPauseTime observes a GC pause duration.
func RecordSystemGCPauseTime(durationMs float64) { globalManager.RecordSystemGCPauseTime(durationMs) }

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
