package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-alert/internal/structures"
)

const maxResponseBodySize = 8 << 20 // 8 MB

// HttpProviderInterface performs a GET with query parameters and hands back
// the status code and body. Non-2xx statuses are not errors at this level.
type HttpProviderInterface interface {
	Get(ctx context.Context, rawURL string, params url.Values) (int, []byte, error)
}

type HttpProvider struct {
	client *http.Client
}

func NewHttpProvider(conf *structures.Config, metrics MetricsProviderInterface) HttpProviderInterface {
	timeout := conf.Tmdb.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HttpProvider{
		client: &http.Client{
			Timeout:   timeout,
			Transport: MetricsTransport(metrics, http.DefaultTransport),
		},
	}
}

func (h *HttpProvider) Get(ctx context.Context, rawURL string, params url.Values) (int, []byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid URL: %w", err)
	}

	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
