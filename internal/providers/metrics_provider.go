package providers

import (
	"guardian/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncSamples()
	IncProviderFailures()
	IncZoneTransitions(event string)
	IncSharePushes(result string)
	IncSosDispatches(channel, result string)
	SetHistorySize(count int)
	SetShareActive(active bool)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	samplesTotal     prometheus.Counter
	providerFailures prometheus.Counter
	zoneTransitions  *prometheus.CounterVec
	sharePushes      *prometheus.CounterVec
	sosDispatches    *prometheus.CounterVec
	historySize      prometheus.Gauge
	shareActive      prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncSamples() {
	m.samplesTotal.Inc()
}

func (m *MetricsProvider) IncProviderFailures() {
	m.providerFailures.Inc()
}

func (m *MetricsProvider) IncZoneTransitions(event string) {
	m.zoneTransitions.WithLabelValues(event).Inc()
}

func (m *MetricsProvider) IncSharePushes(result string) {
	m.sharePushes.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) IncSosDispatches(channel, result string) {
	m.sosDispatches.WithLabelValues(channel, result).Inc()
}

func (m *MetricsProvider) SetHistorySize(count int) {
	m.historySize.Set(float64(count))
}

func (m *MetricsProvider) SetShareActive(active bool) {
	if active {
		m.shareActive.Set(1)
	} else {
		m.shareActive.Set(0)
	}
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guardian_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardian_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardian_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		samplesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardian_samples_total",
			Help: "Total number of location samples taken",
		}),

		providerFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardian_provider_failures_total",
			Help: "Total number of failed location fixes",
		}),

		zoneTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_zone_transitions_total",
			Help: "Total number of safe-zone enter/exit transitions",
		}, []string{"event"}),

		sharePushes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_share_pushes_total",
			Help: "Total number of live-share location pushes",
		}, []string{"result"}),

		sosDispatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_sos_dispatches_total",
			Help: "Total number of SOS dispatch attempts",
		}, []string{"channel", "result"}),

		historySize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "guardian_history_size",
			Help: "Current number of points in the movement history",
		}),

		shareActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "guardian_share_active",
			Help: "Whether a live-share session is currently active",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncSamples()                                      {}
func (n *noopMetrics) IncProviderFailures()                             {}
func (n *noopMetrics) IncZoneTransitions(_ string)                      {}
func (n *noopMetrics) IncSharePushes(_ string)                          {}
func (n *noopMetrics) IncSosDispatches(_, _ string)                     {}
func (n *noopMetrics) SetHistorySize(_ int)                             {}
func (n *noopMetrics) SetShareActive(_ bool)                            {}
