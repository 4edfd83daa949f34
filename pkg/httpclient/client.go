// Package httpclient is a small JSON-over-HTTP client with optional
// exponential-backoff retries.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of an error response is kept on HTTPError
const maxErrorBody = 4 << 10

// ErrInvalidBody is returned when a 200 response is not a single JSON value
var ErrInvalidBody = errors.New("invalid JSON response body")

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*Client)

// HTTPError represents a response whose status was not the expected one
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// RetryConfig configures the retry behavior. MaxRetries of zero disables retries.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          10 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// Client issues GET requests against a base URL
type Client struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
	logger         *zap.Logger
}

// NewClient creates a Client. With no options it has no timeout and no retries.
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		defaultHeaders: map[string]string{
			"Accept": "application/json",
		},
		logger: zap.NewNop(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL builds the full request URL for path and query
func (c *Client) URL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}

// GetJSON performs a GET and decodes a 200 OK JSON body into target.
// Any other status yields an *HTTPError.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	fullURL := c.URL(path, query)
	start := time.Now()

	resp, err := c.get(ctx, fullURL)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error("HTTP request failed",
			zap.String("method", http.MethodGet),
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", duration))
		return errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("HTTP error response",
			zap.String("method", http.MethodGet),
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     http.MethodGet,
			Body:       string(body),
		}
	}

	c.logger.Debug("HTTP request successful",
		zap.String("method", http.MethodGet),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(target); err != nil {
		return errors.Wrap(ErrInvalidBody, err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.Wrap(ErrInvalidBody, "unexpected data after JSON value")
	}
	return nil
}

func (c *Client) get(ctx context.Context, fullURL string) (*http.Response, error) {
	if c.retryConfig == nil || c.retryConfig.MaxRetries <= 0 {
		return c.do(ctx, fullURL)
	}

	var resp *http.Response
	var lastStatus int
	operation := func() error {
		var err error
		lastStatus = 0
		resp, err = c.do(ctx, fullURL)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if c.isRetryable(resp.StatusCode) {
			// drain so the connection can be reused
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastStatus = resp.StatusCode
			return fmt.Errorf("retryable status code: %d", resp.StatusCode)
		}
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryConfig.InitialInterval
	expBackoff.MaxInterval = c.retryConfig.MaxInterval
	expBackoff.Multiplier = c.retryConfig.Multiplier
	expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		if lastStatus != 0 {
			return nil, &HTTPError{
				StatusCode: lastStatus,
				Status:     fmt.Sprintf("%d %s", lastStatus, http.StatusText(lastStatus)),
				URL:        fullURL,
				Method:     http.MethodGet,
				Body:       "retries exhausted",
			}
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, fullURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	return c.httpClient.Do(req)
}

func (c *Client) isRetryable(status int) bool {
	for _, code := range c.retryConfig.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}
