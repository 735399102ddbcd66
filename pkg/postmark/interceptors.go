package postmark

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Request represents an HTTP request that can be intercepted.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors. It is safe to add
// interceptors while requests are running.
type InterceptorChain struct {
	mu                   sync.RWMutex
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	c.mu.RLock()
	interceptors := c.requestInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	c.mu.RLock()
	interceptors := c.responseInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// authKind names the token header a request carries. The token itself is
// never logged.
func authKind(headers http.Header) string {
	switch {
	case headers.Get(ServerTokenHeader) != "":
		return "server"
	case headers.Get(AccountTokenHeader) != "":
		return "account"
	default:
		return "none"
	}
}

// LoggingInterceptor logs each request by route.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method":     req.Method,
			"path":       req.Path,
			"route":      RouteTemplate(req.Path),
			"auth":       authKind(req.Headers),
			"body_bytes": len(req.Body),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses. Failed calls carry the error
// kind and Postmark error code; input and rate-limit rejections are logged
// as warnings.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"route":       RouteTemplate(req.Path),
			"status_code": resp.StatusCode,
		}

		if resp.Error == nil {
			logger.Debug("API Response", fields)

			return nil
		}

		fields["error"] = resp.Error.Error()

		apiErr := AsError(resp.Error)
		if apiErr == nil {
			logger.Error("API Response Error", fields)

			return nil
		}

		fields["kind"] = string(apiErr.Kind)
		fields["error_code"] = apiErr.Code

		switch apiErr.Kind {
		case KindAPIInput, KindInactiveRecipients, KindInvalidEmailRequest, KindRateLimitExceeded:
			logger.Warn("API Response Error", fields)
		default:
			logger.Error("API Response Error", fields)
		}

		return nil
	}
}

// RateLimitInterceptor keeps the client under requestsPerSecond using a token
// bucket. The refill goroutine stops when ctx is done.
func RateLimitInterceptor(ctx context.Context, requestsPerSecond int) RequestInterceptor {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}

	bucket := make(chan struct{}, requestsPerSecond)

	for range requestsPerSecond {
		bucket <- struct{}{}
	}

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(requestsPerSecond))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case bucket <- struct{}{}:
				default:
					// full
				}
			}
		}
	}()

	return func(reqCtx context.Context, req *Request) error {
		select {
		case <-bucket:
			return nil
		case <-reqCtx.Done():
			return reqCtx.Err()
		}
	}
}

// HeaderInterceptor adds custom headers to requests. The token headers are
// owned by the client and are never overwritten.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	extra := make(http.Header, len(headers))

	for key, value := range headers {
		switch http.CanonicalHeaderKey(key) {
		case http.CanonicalHeaderKey(ServerTokenHeader), http.CanonicalHeaderKey(AccountTokenHeader):
			continue
		}

		extra.Set(key, value)
	}

	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, values := range extra {
			req.Headers[key] = append([]string(nil), values...)
		}

		return nil
	}
}

// routeChildren lists the fixed path segments that may follow a collection
// whose members are addressed by name.
var routeChildren = map[string]map[string]bool{
	"templates":       {"push": true, "validate": true},
	"message-streams": {},
	"outbound":        {"opens": true, "clicks": true},
	"inbound":         {},
	"opens":           {},
	"clicks":          {},
}

// RouteTemplate replaces resource identifiers in an API path with {id}, so
// "/bounces/42/dump" and "/bounces/7/dump" share the route
// "/bounces/{id}/dump". Statistics paths carry no identifiers.
func RouteTemplate(path string) string {
	if strings.HasPrefix(path, "/stats/") {
		return path
	}

	segments := strings.Split(path, "/")

	for i := 1; i < len(segments); i++ {
		segment := segments[i]
		if segment == "" {
			continue
		}

		if isNumeric(segment) {
			segments[i] = "{id}"

			continue
		}

		// outbound and inbound only hold ids under /messages
		parent := segments[i-1]
		if (parent == "outbound" || parent == "inbound") && (i < 2 || segments[i-2] != "messages") {
			continue
		}

		if children, ok := routeChildren[parent]; ok && !children[segment] {
			segments[i] = "{id}"
		}
	}

	return strings.Join(segments, "/")
}

func isNumeric(segment string) bool {
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Metrics holds counters for one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API metrics keyed by "METHOD route", where the
// route comes from RouteTemplate.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback for when metrics change.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for an endpoint, or nil.
func (m *MetricsCollector) GetMetrics(endpoint string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[endpoint]; ok {
		snapshot := *metrics

		return &snapshot
	}

	return nil
}

// Install adds the collector's interceptors to chain.
func (m *MetricsCollector) Install(chain *InterceptorChain) {
	chain.AddRequestInterceptor(MetricsRequestInterceptor(m))
	chain.AddResponseInterceptor(MetricsResponseInterceptor(m))
}

// MetricsRequestInterceptor records request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata["start_time"] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := req.Method + " " + RouteTemplate(req.Path)

		collector.mu.Lock()

		metrics, ok := collector.metrics[endpoint]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()

		if req.Metadata != nil {
			if startTime, ok := req.Metadata["start_time"].(time.Time); ok {
				metrics.TotalLatency += time.Since(startTime)
				metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
			}
		}

		if resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
			metrics.TotalErrors++
		}

		snapshot := *metrics
		onChange := collector.onChange

		collector.mu.Unlock()

		if onChange != nil {
			onChange(endpoint, snapshot)
		}

		return nil
	}
}
