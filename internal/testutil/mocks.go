package testutil

import (
	"context"
	"errors"
	"fmt"
	"movie-alert/internal/providers"
	"net/url"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) With(_, _ string) providers.Logger { return m }
func (m *MockLogger) Close()                            {}

// Messages returns the rendered messages logged at level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e.Message())
		}
	}
	return out
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and keeps counters.
type MockMetrics struct {
	mu             sync.Mutex
	Movies         map[string]int
	Launches       map[string]int
	Runs           map[string]int
	Seen           int
	PersistCalls   int
	FlushCalls     int
	CacheHits      int
	CacheMisses    int
	RequestsTotals int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestsTotals++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
}
func (m *MockMetrics) SetMoviesTotal(stage string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Movies == nil {
		m.Movies = make(map[string]int)
	}
	m.Movies[stage] = count
}
func (m *MockMetrics) IncBrowserLaunches(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Launches == nil {
		m.Launches = make(map[string]int)
	}
	m.Launches[result]++
}
func (m *MockMetrics) SetSeenTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Seen = count
}
func (m *MockMetrics) IncRunsTotal(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Runs == nil {
		m.Runs = make(map[string]int)
	}
	m.Runs[status]++
}
func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FlushCalls++
	return nil
}

// MockBrowser implements providers.BrowserProviderInterface.
type MockBrowser struct {
	mu     sync.Mutex
	Opened []string
	Err    error
}

func (m *MockBrowser) Open(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Opened = append(m.Opened, url)
	return m.Err
}

// HttpCall is one request seen by MockHttp.
type HttpCall struct {
	URL    string
	Params url.Values
}

// MockHttp implements providers.HttpProviderInterface over canned responses
// keyed by the request URL path suffix and page parameter.
type MockHttp struct {
	mu        sync.Mutex
	Calls     []HttpCall
	Responses map[string]HttpResponse
}

type HttpResponse struct {
	Status int
	Body   string
	Err    error
}

var ErrNoResponse = errors.New("no canned response")

func NewMockHttp() *MockHttp {
	return &MockHttp{Responses: make(map[string]HttpResponse)}
}

// Key builds the lookup key: the endpoint path and, when present, "?page=N".
func Key(endpoint string, page string) string {
	if page == "" {
		return endpoint
	}
	return endpoint + "?page=" + page
}

func (m *MockHttp) On(endpoint, page string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[Key(endpoint, page)] = HttpResponse{Status: status, Body: body}
}

func (m *MockHttp) Fail(endpoint, page string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[Key(endpoint, page)] = HttpResponse{Err: err}
}

func (m *MockHttp) Get(_ context.Context, rawURL string, params url.Values) (int, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, HttpCall{URL: rawURL, Params: params})

	for endpoint, resp := range m.Responses {
		path, page, _ := strings.Cut(endpoint, "?page=")
		if !strings.HasSuffix(rawURL, path) || page != params.Get("page") {
			continue
		}
		if resp.Err != nil {
			return 0, nil, resp.Err
		}
		return resp.Status, []byte(resp.Body), nil
	}
	return 0, nil, ErrNoResponse
}

// Pages returns the page parameter of every call to endpoint, in order.
func (m *MockHttp) Pages(endpoint string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var pages []string
	for _, c := range m.Calls {
		if strings.HasSuffix(c.URL, endpoint) {
			pages = append(pages, c.Params.Get("page"))
		}
	}
	return pages
}
