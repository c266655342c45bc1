package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/observability"
	"github.com/SohamMhatre7788/insurai/internal/session"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// maxResponseBytes bounds how much of a backend reply is read.
const maxResponseBytes = 1 << 20

// SessionSource is the client's view of the session store: a snapshot for
// attaching credentials, and targeted invalidation for 401 responses. The
// dependency is injected at construction rather than reached for globally.
type SessionSource interface {
	Snapshot() session.State
	InvalidateGeneration(gen uint64)
}

// Client sends every backend request with the session's credentials attached
// and intercepts authorization failures globally: a 401 clears the session
// before the error ever reaches the calling screen, so screens only observe
// validation, transport and other non-auth failures.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sessions       SessionSource
	logger         *zap.Logger
	metrics        *observability.Metrics
	onUnauthorized func()
}

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient substitutes the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics attaches request counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithUnauthorizedHook registers the navigation side of 401 interception; it
// runs after the session is cleared and before the error propagates.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient builds the configured request sender.
func NewClient(baseURL string, timeout time.Duration, sessions SessionSource, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		sessions:   sessions,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, query url.Values, in, out interface{}) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, query, body, "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, path string, query url.Values, in, out interface{}) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, query, body, "application/json", out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, "", out)
}

func (c *Client) postMultipart(ctx context.Context, path string, form *Form, out interface{}) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

func (c *Client) putMultipart(ctx context.Context, path string, form *Form, out interface{}) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, contentType, out)
}

// do sends one request. Credentials come from a single session snapshot so a
// request never carries a half-set pair, and the snapshot's generation
// scopes any 401-triggered invalidation to the credentials that failed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return util.ToClientError(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	state := c.sessions.Snapshot()
	if state.Session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+state.Session.Token)
	}
	if state.Session.User != nil {
		req.Header.Set("X-User-Id", strconv.FormatInt(state.Session.User.ID, 10))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordError(path, method, "TRANSPORT_ERROR")
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return util.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.RecordError(path, method, "TRANSPORT_ERROR")
		return util.NewTransportError(err)
	}
	c.metrics.RecordRequest(path, method, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		// Clear the session before the error can propagate so no screen
		// keeps rendering against invalidated credentials.
		c.sessions.InvalidateGeneration(state.Generation)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.logger.Info("session invalidated by backend", zap.String("path", path))
		return util.NewUnauthorized("session expired or invalid")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.RecordError(path, method, strconv.Itoa(resp.StatusCode))
		return util.NewAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return util.ToClientError(fmt.Errorf("decode response from %s: %w", path, err))
		}
	}
	return nil
}

func encodeJSON(in interface{}) ([]byte, error) {
	if in == nil {
		return nil, nil
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, util.ToClientError(fmt.Errorf("encode request: %w", err))
	}
	return body, nil
}
