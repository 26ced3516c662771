package statsapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mlb-stats-service/internal/metrics"
)

const defaultTimeout = 20 * time.Second

// Fetcher retrieves a raw JSON document from the upstream Stats API.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

// Client fetches raw documents from the MLB Stats API. Responses are
// validated (2xx, non-empty, well-formed JSON) but not decoded; decoding
// happens once per view from the cached payload.
type Client struct {
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// FetchDocument retrieves and validates one document.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	payload, err := c.fetch(ctx, url)
	c.recorder.RecordUpstreamAttempt(EndpointLabel(url), time.Since(start), err)
	return payload, err
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &UnavailableError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &UnavailableError{URL: url, StatusCode: resp.StatusCode}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{URL: url, Err: err}
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, &UnavailableError{URL: url, Err: errEmptyBody}
	}
	if !json.Valid(payload) {
		return nil, &UnavailableError{URL: url, Err: errInvalidJSON}
	}

	return payload, nil
}

var (
	errEmptyBody   = stringError("empty response body")
	errInvalidJSON = stringError("invalid JSON response")
)

type stringError string

func (e stringError) Error() string { return string(e) }
