package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const requestIDHeader = "X-Request-ID"

// TokenSource supplies the bearer token for authenticated requests.
// An empty token means the request goes out without Authorization.
type TokenSource interface {
	Token() string
}

// Request describes one API call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Params *Params
	Body   any
	Header http.Header
}

// Client performs requests against the meter backend.
//
// A Client built with WithTokenSource attaches a bearer token to every
// request; one built without is the unauthenticated variant used for login.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  hclog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTokenSource makes the client attach "Authorization: Bearer <token>".
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithHTTPClient replaces the HTTP client built from Config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// New creates a client for the given configuration.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API client config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.NewHTTPClient(),
		logger:  logger.Named("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Authenticated reports whether the client attaches bearer tokens.
func (c *Client) Authenticated() bool {
	return c.tokens != nil
}

// BaseURL returns the origin requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes a single request and classifies the outcome.
//
// Non-2xx responses and network failures are returned as *Error and logged
// once here; callers above this layer pass them through untouched.
func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if r.Body != nil {
		bodyBytes, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(r.Path, r.Params), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if c.tokens != nil && req.Header.Get("Authorization") == "" {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := req.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		req.Header.Set(requestIDHeader, requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.fail(&Error{
			Method:    method,
			Path:      r.Path,
			RequestID: requestID,
			Err:       err,
		})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&Error{
			Method:    method,
			Path:      r.Path,
			RequestID: requestID,
			Err:       fmt.Errorf("failed to read response: %w", err),
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(&Error{
			Method:     method,
			Path:       r.Path,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       string(respBody),
			RequestID:  requestID,
		})
	}

	return newResponse(resp.StatusCode, resp.Header.Get("Content-Type"), respBody), nil
}

func (c *Client) fail(apiErr *Error) error {
	c.logger.Error("API request error",
		"method", apiErr.Method,
		"path", apiErr.Path,
		"status", apiErr.StatusCode,
		"request_id", apiErr.RequestID,
		"error", apiErr.Error(),
	)
	return apiErr
}

// buildURL joins the base URL, path and encoded query parameters.
func (c *Client) buildURL(path string, params *Params) string {
	endpoint := c.baseURL + path
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}
	return endpoint
}

func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
