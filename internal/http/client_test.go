package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pmhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{}) { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{}) { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		messages = append(messages, entry["msg"].(string))
	}

	return messages
}

// optionsFor points Options at an httptest server.
func optionsFor(server *httptest.Server) *postmark.Options {
	return &postmark.Options{
		UseTLS:      false,
		RequestHost: strings.TrimPrefix(server.URL, "http://"),
		Timeout:     5 * time.Second,
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/bounces/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-token", request.Header.Get(postmark.ServerTokenHeader))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, postmark.DefaultUserAgent, request.Header.Get("User-Agent"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"ID": 42, "Email": "a@example.com"})
		}))
		defer server.Close()

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

		resp, err := client.Do(context.Background(), &pmhttp.Request{
			Method: "GET",
			Path:   "/bounces/42",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", result["Email"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/bounces", request.URL.Path)
			assert.Equal(t, "count=100&offset=0", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

		resp, err := client.Get(context.Background(), "/bounces", url.Values{
			"count":  []string{"100"},
			"offset": []string{"0"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "sender@example.com", body["From"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

		resp, err := client.Post(context.Background(), "/email", map[string]string{"From": "sender@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(writer).Encode(postmark.ErrorResponse{
				ErrorCode: 300,
				Message:   "Invalid 'From' address.",
			})
		}))
		defer server.Close()

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

		resp, err := client.Post(context.Background(), "/email", map[string]string{})
		require.Error(t, err)
		assert.Equal(t, 422, resp.StatusCode)

		apiErr := &postmark.Error{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, postmark.KindInvalidEmailRequest, apiErr.Kind)
		assert.Equal(t, 300, apiErr.Code)
		assert.Equal(t, "Invalid 'From' address.", apiErr.Message)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

		resp, err := client.Do(context.Background(), &pmhttp.Request{
			Method: "GET",
			Path:   "/server",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server),
			pmhttp.WithLogger(logger), pmhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/server", nil)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("logger without debug stays quiet", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server), pmhttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "/server", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*pmhttp.Client, context.Context) (*pmhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *pmhttp.Client, ctx context.Context) (*pmhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *pmhttp.Client, ctx context.Context) (*pmhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *pmhttp.Client, ctx context.Context) (*pmhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *pmhttp.Client, ctx context.Context) (*pmhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *pmhttp.Client, ctx context.Context) (*pmhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_SingleAttempt(t *testing.T) {
	t.Parallel()

	codes := []struct {
		status int
		kind   postmark.ErrorKind
	}{
		{http.StatusUnauthorized, postmark.KindInvalidAPIKey},
		{http.StatusNotFound, postmark.KindPostmarkError},
		{http.StatusTooManyRequests, postmark.KindRateLimitExceeded},
		{http.StatusInternalServerError, postmark.KindInternalServer},
		{http.StatusServiceUnavailable, postmark.KindServiceUnavailable},
		{http.StatusBadGateway, postmark.KindUnknown},
	}

	for _, testCase := range codes {
		t.Run(http.StatusText(testCase.status), func(t *testing.T) {
			t.Parallel()

			var attempts int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				atomic.AddInt32(&attempts, 1)
				writer.WriteHeader(testCase.status)
			}))
			defer server.Close()

			client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
			assert.Equal(t, testCase.kind, postmark.KindOf(err))
			assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
	options := optionsFor(server)
	server.Close()

	client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", options)

	resp, err := client.Get(context.Background(), "/test", nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	apiErr := postmark.AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, postmark.KindPostmarkError, apiErr.Kind)
	assert.Error(t, apiErr.Unwrap())
}

func TestClient_UnencodableBody(t *testing.T) {
	t.Parallel()

	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(&attempts, 1)
	}))
	defer server.Close()

	client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server))

	resp, err := client.Post(context.Background(), "/email/withTemplate", map[string]interface{}{
		"TemplateModel": map[string]interface{}{"total": math.NaN()},
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, postmark.KindPostmarkError, postmark.KindOf(err))
	assert.Contains(t, err.Error(), "marshaling request body")
	assert.Equal(t, int32(0), atomic.LoadInt32(&attempts))
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-release:
		case <-request.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	options := optionsFor(server)
	options.Timeout = 50 * time.Millisecond

	client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", options)

	_, err := client.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	assert.Equal(t, postmark.KindPostmarkError, postmark.KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_LiveOptions(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(&hits, 1)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	options := &postmark.Options{UseTLS: false, RequestHost: "127.0.0.1:1", Timeout: time.Second}
	client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", options)

	_, err := client.Get(context.Background(), "/server", nil)
	require.Error(t, err)

	options.RequestHost = strings.TrimPrefix(server.URL, "http://")

	_, err = client.Get(context.Background(), "/server", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Same(t, options, client.Options())
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	var seen atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen.Store(request.Header.Get("User-Agent"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := pmhttp.NewClient(postmark.AccountTokenHeader, "account-token", optionsFor(server),
		pmhttp.WithUserAgent("initial-agent"))
	assert.Equal(t, "initial-agent", client.UserAgent())

	_, err := client.Get(context.Background(), "/servers", nil)
	require.NoError(t, err)
	assert.Equal(t, "initial-agent", seen.Load())

	client.SetUserAgent("custom-agent/2.0")

	_, err = client.Get(context.Background(), "/servers", nil)
	require.NoError(t, err)
	assert.Equal(t, "custom-agent/2.0", seen.Load())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	t.Run("request interceptor adds header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "req-1", request.Header.Get("X-Request-ID"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		chain := postmark.NewInterceptorChain()
		chain.AddRequestInterceptor(postmark.HeaderInterceptor(map[string]string{"X-Request-ID": "req-1"}))

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server),
			pmhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/server", nil)
		require.NoError(t, err)
	})

	t.Run("request interceptor error aborts the call", func(t *testing.T) {
		t.Parallel()

		var hits int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer server.Close()

		blocked := errors.New("blocked")
		chain := postmark.NewInterceptorChain()
		chain.AddRequestInterceptor(func(ctx context.Context, req *postmark.Request) error {
			return blocked
		})

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "test-token", optionsFor(server),
			pmhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/server", nil)
		require.ErrorIs(t, err, blocked)
		assert.Equal(t, postmark.KindPostmarkError, postmark.KindOf(err))
		assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
	})

	t.Run("response interceptor sees status and error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"ErrorCode":10,"Message":"Bad or missing Server API token."}`))
		}))
		defer server.Close()

		var (
			status int
			seen   error
		)

		chain := postmark.NewInterceptorChain()
		chain.AddResponseInterceptor(func(ctx context.Context, req *postmark.Request, resp *postmark.Response) error {
			status = resp.StatusCode
			seen = resp.Error

			return nil
		})

		client := pmhttp.NewClient(postmark.ServerTokenHeader, "bad-token", optionsFor(server),
			pmhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/server", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.True(t, postmark.IsInvalidAPIKey(seen))
	})
}
