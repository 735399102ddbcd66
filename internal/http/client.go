// Package http is the transport shared by every resource client: it builds
// requests from the live connection options, sends them once and normalizes
// failures into *postmark.Error.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// Logger is the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a completed API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends authenticated requests to the API.
type Client struct {
	httpClient   *retryablehttp.Client
	options      *postmark.Options
	tokenHeader  string
	token        string
	logger       Logger
	debug        bool
	interceptors *postmark.InterceptorChain

	mu        sync.RWMutex
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the initial User-Agent.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *postmark.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client authenticating with token in tokenHeader. The
// options pointer is kept: the URL and timeout are read from it per request.
func NewClient(tokenHeader, token string, options *postmark.Options, opts ...Option) *Client {
	if options == nil {
		options = postmark.DefaultOptions()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		httpClient:  retryClient,
		options:     options,
		tokenHeader: tokenHeader,
		token:       token,
		userAgent:   postmark.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil && client.debug {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// noRetry makes every request a single attempt. A cancelled context is still
// reported.
func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Options returns the live connection options.
func (c *Client) Options() *postmark.Options {
	return c.options
}

// UserAgent returns the identifying string sent with each request.
func (c *Client) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.userAgent
}

// SetUserAgent replaces the identifying string for subsequent requests.
func (c *Client) SetUserAgent(userAgent string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.userAgent = userAgent
}

// Do performs a request. Non-2xx responses are returned together with a
// *postmark.Error; transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.options.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, postmark.NewTransportError(fmt.Errorf("marshaling request body: %w", err))
		}
	}

	intercepted := &postmark.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: c.headers(req, bodyBytes != nil),
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, postmark.NewTransportError(err)
		}
	}

	resp, err := c.send(ctx, req, intercepted)

	if c.interceptors != nil {
		interceptedResp := &postmark.Response{Error: err}
		if resp != nil {
			interceptedResp.StatusCode = resp.StatusCode
			interceptedResp.Headers = resp.Headers
			interceptedResp.Body = resp.Body
		}

		ierr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
		if ierr != nil && err == nil {
			err = postmark.NewTransportError(ierr)
		}
	}

	return resp, err
}

func (c *Client) send(ctx context.Context, req *Request, intercepted *postmark.Request) (*Response, error) {
	fullURL := c.options.BaseURL() + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, postmark.NewTransportError(fmt.Errorf("creating request: %w", err))
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		return nil, postmark.NewTransportError(err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, postmark.NewTransportError(fmt.Errorf("reading response body: %w", err))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, postmark.NewResponseError(httpResp.StatusCode, body)
	}

	return resp, nil
}

func (c *Client) headers(req *Request, hasBody bool) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.UserAgent())
	headers.Set(c.tokenHeader, c.token)

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromPairs(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromPairs(keysAndValues))
}

func fieldsFromPairs(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)
