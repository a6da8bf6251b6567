// Package backend implements the HTTP client for the ALC ERP REST API. All
// record data the console displays comes through this client; the console
// itself persists nothing.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
	"github.com/iamselvaperumal/alc-console/internal/metrics"
)

// DefaultTimeout bounds every backend request, matching the contract that a
// timeout is handled exactly like a connection failure.
const DefaultTimeout = 30 * time.Second

// UnauthorizedHook is invoked for any 401 response outside the auth
// endpoints, carrying the credential the backend just refused. Rejections
// from login, register and the profile check are exempt so a dead
// credential cannot cause a redirect loop.
type UnauthorizedHook func(ctx context.Context, path, token string)

// Client talks to the ERP backend. Safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         zerolog.Logger
	onUnauthorized UnauthorizedHook
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUnauthorizedHook registers the 401 observer.
func WithUnauthorizedHook(h UnauthorizedHook) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// New creates a backend client rooted at baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "backend").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the backend's error envelope. Older endpoints use "error",
// newer ones "message"; accept both.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// authPaths are exempt from the global 401 handling.
var authPaths = []string{"/auth/login", "/auth/register", "/auth/profile"}

func isAuthPath(path string) bool {
	for _, p := range authPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// do performs one request and decodes a 2xx body into out (when non-nil).
// Failures are classified into the domain error taxonomy.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(method, path, 0, time.Since(start))
		// No response ever arrived: transport failure, timeout, or the
		// caller went away.
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &domain.APIError{Kind: domain.ErrNetworkUnreachable}
	}
	defer resp.Body.Close()
	metrics.ObserveBackendRequest(method, path, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Status: resp.StatusCode, Kind: domain.ErrServerError}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("malformed response body")
			return &domain.APIError{Status: resp.StatusCode, Kind: domain.ErrServerError}
		}
		return nil
	}

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.text()

	if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) && c.onUnauthorized != nil {
		c.onUnauthorized(ctx, path, token)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &domain.APIError{Status: resp.StatusCode, Message: msg, Kind: domain.ErrNotFound}
	case resp.StatusCode >= 500:
		return &domain.APIError{Status: resp.StatusCode, Message: msg, Kind: domain.ErrServerError}
	default:
		return &domain.APIError{Status: resp.StatusCode, Message: msg, Kind: domain.ErrAuthRejected}
	}
}

// Ping probes the ERP with an unauthenticated request. Any HTTP response at
// all counts as reachable; only a transport failure reports unhealthy.
func (c *Client) Ping(ctx context.Context) error {
	err := c.get(ctx, "/awards", "", nil)
	if errors.Is(err, domain.ErrNetworkUnreachable) {
		return err
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body any) error {
	return c.do(ctx, http.MethodPut, path, token, body, nil)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
