package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/HelixLauncher/ferinth/internal/auth"
	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// Logger is the minimal logging surface the HTTP layer needs.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP layer every API call goes through. It owns the
// base URL, authentication, the User-Agent, and the translation of HTTP
// failures into the package's typed errors.
type Client struct {
	baseURL    string
	tokens     auth.TokenManager
	httpClient *retryablehttp.Client
	logger     Logger
	userAgent  string
	debug      bool
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables retrying of transient failures. By default the
// client never retries, so every call is a single round trip.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each whole request, including retries of it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client for the given API base URL. A nil
// token manager means every request goes out unauthenticated.
func NewClient(baseURL string, tokens auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.CheckRetry = retryPolicy
	retryClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy extends the default policy with 429 handling so opted-in
// retries also cover rate limiting. With RetryMax at its default of
// zero this never runs a second attempt.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	//nolint:wrapcheck // policy passthrough
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Path joins segments into a rooted, escaped request path. Each segment
// is escaped on its own, so a value containing "/" stays one segment
// ("a/b" becomes "a%2Fb") instead of introducing a new path level.
func Path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}

	return "/" + strings.Join(escaped, "/")
}

// Do executes an API request. On non-2xx responses the parsed
// *modrinth.APIError is returned alongside the response so callers can
// still inspect status and body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, &modrinth.SerializationError{Err: err}
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, &modrinth.TransportError{URL: fullURL, Err: err}
	}

	if err := c.setHeaders(ctx, httpReq, req); err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &modrinth.TransportError{URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &modrinth.TransportError{URL: fullURL, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(respBody),
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return response, modrinth.ParseAPIError(response.StatusCode, respBody)
	}

	return response, nil
}

// setHeaders applies the standard header set, then any per-request
// overrides.
func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting token: %w", err)
		}

		// Modrinth expects the bare token, not an OAuth-style
		// "Bearer" value.
		if token != "" {
			httpReq.Header.Set("Authorization", token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body. A nil body sends no
// payload at all, which Modrinth's follow endpoint expects.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}
