package providers

import (
	"os"
	"path/filepath"
	"movie-alert/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/movie/upcoming", 200)
	m.ObserveRequestDuration("/movie/upcoming", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.ObservePersistenceDuration(time.Millisecond)
	m.SetMoviesTotal("fetched", 10)
	m.IncBrowserLaunches("ok")
	m.SetSeenTotal(3)
	m.IncRunsTotal("success")
	assert.NoError(t, m.Flush())
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_TwoInstancesDoNotCollide(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	assert.NotPanics(t, func() {
		NewMetricsProvider(conf)
		NewMetricsProvider(conf)
	})
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf).(*MetricsProvider)

	m.IncRequestsTotal("/movie/upcoming", 200)
	m.IncRequestsTotal("/movie/upcoming", 200)
	m.IncRequestsTotal("/movie/upcoming", 404)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncCacheMisses()
	m.SetMoviesTotal("matched", 4)
	m.IncBrowserLaunches("ok")
	m.SetSeenTotal(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/movie/upcoming", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/movie/upcoming", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.moviesTotal.WithLabelValues("matched")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.browserLaunches.WithLabelValues("ok")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.seenTotal))
}

func TestMetricsProvider_FlushWritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie_alert.prom")
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true, Textfile: path},
	}
	m := NewMetricsProvider(conf)
	m.IncRunsTotal("success")
	m.SetSeenTotal(7)

	require.NoError(t, m.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `movie_alert_runs_total{status="success"} 1`)
	assert.Contains(t, string(data), "movie_alert_seen_movies 7")
}

func TestMetricsProvider_FlushWithoutTextfile(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	assert.NoError(t, NewMetricsProvider(conf).Flush())
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "error"},
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
