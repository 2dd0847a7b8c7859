package providers

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"movie-alert/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	SetMoviesTotal(stage string, count int)
	IncBrowserLaunches(result string)
	SetSeenTotal(count int)
	IncRunsTotal(status string)
	Flush() error
}

type MetricsProvider struct {
	registry            *prometheus.Registry
	textfile            string
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	moviesTotal         *prometheus.GaugeVec
	browserLaunches     *prometheus.CounterVec
	seenTotal           prometheus.Gauge
	runsTotal           *prometheus.CounterVec
	lastRun             prometheus.Gauge
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

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetMoviesTotal(stage string, count int) {
	m.moviesTotal.WithLabelValues(stage).Set(float64(count))
}

func (m *MetricsProvider) IncBrowserLaunches(result string) {
	m.browserLaunches.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) SetSeenTotal(count int) {
	m.seenTotal.Set(float64(count))
}

func (m *MetricsProvider) IncRunsTotal(status string) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.lastRun.SetToCurrentTime()
}

// Flush writes every metric to the configured node-exporter textfile.
func (m *MetricsProvider) Flush() error {
	if m.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(m.textfile, m.registry); err != nil {
		return fmt.Errorf("unable to write metrics textfile: %w", err)
	}
	return nil
}

// Gatherer exposes the private registry.
func (m *MetricsProvider) Gatherer() prometheus.Gatherer {
	return m.registry
}

func httpStatusBucket(code int) string {
	switch {
	case code == 0:
		return "error"
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

	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,
		textfile: conf.Metrics.Textfile,

		requestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "movie_alert_requests_total",
			Help: "Total number of TMDB API requests",
		}, []string{"endpoint", "status"}),

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "movie_alert_request_duration_seconds",
			Help:    "TMDB API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "movie_alert_cache_hits_total",
			Help: "Total number of genre catalog cache hits",
		}),

		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "movie_alert_cache_misses_total",
			Help: "Total number of genre catalog cache misses",
		}),

		persistenceDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "movie_alert_persistence_duration_seconds",
			Help:    "Duration of seen-set load and save operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		moviesTotal: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "movie_alert_movies",
			Help: "Number of movies at each pipeline stage of the last run",
		}, []string{"stage"}),

		browserLaunches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "movie_alert_browser_launches_total",
			Help: "Total number of browser launches by result",
		}, []string{"result"}),

		seenTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "movie_alert_seen_movies",
			Help: "Number of movie ids in the seen set",
		}),

		runsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "movie_alert_runs_total",
			Help: "Total number of pipeline runs by status",
		}, []string{"status"}),

		lastRun: f.NewGauge(prometheus.GaugeOpts{
			Name: "movie_alert_last_run_timestamp_seconds",
			Help: "Unix time of the last finished pipeline run",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetMoviesTotal(_ string, _ int)                   {}
func (n *noopMetrics) IncBrowserLaunches(_ string)                      {}
func (n *noopMetrics) SetSeenTotal(_ int)                               {}
func (n *noopMetrics) IncRunsTotal(_ string)                            {}
func (n *noopMetrics) Flush() error                                     { return nil }
