// Package rentms is a typed client for the rental-management REST API that
// owns all property, tenant, lease and maintenance data. Every response is
// wrapped in the {success, message, data, pagination} envelope; any 401
// invokes the OnUnauthorized hook so the caller can tear the session down.
package rentms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"backoffice-service/internal/model"

	"go.uber.org/zap"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means no session is established.
type TokenSource interface {
	Token() string
}

// Client communicates with the rental-management API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
	Tokens     TokenSource

	// OnUnauthorized is called once per 401 response before the error is
	// returned to the caller.
	OnUnauthorized func()

	// Observe, when set, is called after every request with the outcome.
	Observe func(method, path string, status int, elapsed time.Duration)
}

// APIError is a non-2xx response from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream API error (%d)", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the upstream API.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// envelope is the upstream response wrapper.
type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       json.RawMessage       `json:"data,omitempty"`
	Pagination *model.PaginationInfo `json:"pagination,omitempty"`
}

// NewClient creates a new rental-management API client
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
		Tokens:     tokens,
	}
}

// do issues one request and decodes the envelope. A nil out skips data
// decoding. The returned envelope is valid only when err is nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) (*envelope, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		c.Logger.Error("Failed to create upstream request", zap.Error(err))
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		if c.Observe != nil {
			c.Observe(method, path, 0, time.Since(start))
		}
		return nil, err
	}
	defer resp.Body.Close()

	if c.Observe != nil {
		c.Observe(method, path, resp.StatusCode, time.Since(start))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read upstream response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.Logger.Warn("Upstream returned 401, tearing down session",
			zap.String("method", method),
			zap.String("path", path))
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFrom(respBody)}
	}

	if resp.StatusCode >= 400 {
		c.Logger.Error("Upstream returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFrom(respBody)}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		c.Logger.Error("Failed to parse upstream envelope", zap.Error(err))
		return nil, fmt.Errorf("failed to parse upstream response: %w", err)
	}

	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.Logger.Error("Failed to decode upstream data", zap.Error(err))
			return nil, fmt.Errorf("failed to decode upstream data: %w", err)
		}
	}

	return &env, nil
}

// list issues a paginated GET and reconciles pagination, falling back to a
// locally derived block when the server omits one.
func (c *Client) list(ctx context.Context, path string, params model.ListParams, out interface{}, count func() int) (model.PaginationInfo, error) {
	env, err := c.do(ctx, http.MethodGet, path, params.Values(), nil, out)
	if err != nil {
		return model.PaginationInfo{}, err
	}
	if env.Pagination != nil {
		return *env.Pagination, nil
	}
	page := params.Page
	if page == 0 {
		page = 1
	}
	return model.FallbackPagination(page, params.Limit, count()), nil
}

func messageFrom(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return ""
}
