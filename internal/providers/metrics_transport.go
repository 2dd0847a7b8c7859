package providers

import (
	"net/http"
	"time"
)

// metricsTransport records request count and latency per endpoint path.
type metricsTransport struct {
	next    http.RoundTripper
	metrics MetricsProviderInterface
}

func (t *metricsTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(r)

	duration := time.Since(start)
	endpoint := r.URL.Path
	status := 0
	if err == nil {
		status = resp.StatusCode
	}
	t.metrics.IncRequestsTotal(endpoint, status)
	t.metrics.ObserveRequestDuration(endpoint, duration)

	return resp, err
}

func MetricsTransport(metrics MetricsProviderInterface, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &metricsTransport{next: next, metrics: metrics}
}
