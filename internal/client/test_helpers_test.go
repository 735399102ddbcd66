package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const testToken = "test-token"

// testOptions points the client at a test server.
func testOptions(t *testing.T, serverURL string) *postmark.Options {
	t.Helper()

	parsed, err := url.Parse(serverURL)
	require.NoError(t, err)

	return &postmark.Options{
		UseTLS:      false,
		RequestHost: parsed.Host,
		Timeout:     5 * time.Second,
	}
}

// testConfig returns a client config aimed at serverURL.
func testConfig(t *testing.T, serverURL string, opts ...postmark.Option) *postmark.Config {
	t.Helper()

	opts = append([]postmark.Option{postmark.WithOptions(testOptions(t, serverURL))}, opts...)

	return postmark.NewConfig(opts...)
}

// newTestHTTPClient creates a transport for resource client tests.
func newTestHTTPClient(t *testing.T, serverURL string) *internalhttp.Client {
	t.Helper()

	return internalhttp.NewClient(postmark.ServerTokenHeader, testToken, testOptions(t, serverURL))
}

// TestOperation describes one call made against a stub API.
type TestOperation[TResponse any] struct {
	Name          string
	Method        string
	ExpectedPath  string
	ExpectedQuery map[string]string
	ExpectedBody  map[string]interface{}
	StatusCode    int
	Response      interface{}
	WantKind      postmark.ErrorKind
	Call          func(context.Context, *internalhttp.Client) (TResponse, error)
	Validate      func(*testing.T, TResponse)
}

// RunOperationTests runs each operation against its own httptest server and
// checks the request the client produced and the decoded result.
func RunOperationTests[TResponse any](t *testing.T, tests []TestOperation[TResponse]) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.Method, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testToken, request.Header.Get(postmark.ServerTokenHeader))

				for key, value := range testCase.ExpectedQuery {
					assert.Equal(t, value, request.URL.Query().Get(key), "query parameter %s", key)
				}

				if testCase.ExpectedBody != nil {
					body, err := io.ReadAll(request.Body)
					assert.NoError(t, err)

					var decoded map[string]interface{}
					assert.NoError(t, json.Unmarshal(body, &decoded))

					for key, value := range testCase.ExpectedBody {
						assert.Equal(t, value, decoded[key], "body field %s", key)
					}
				}

				statusCode := testCase.StatusCode
				if statusCode == 0 {
					statusCode = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(statusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			result, err := testCase.Call(context.Background(), newTestHTTPClient(t, server.URL))

			if testCase.WantKind != "" {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, postmark.KindOf(err))
				assert.Zero(t, result)

				return
			}

			require.NoError(t, err)

			if testCase.Validate != nil {
				testCase.Validate(t, result)
			}
		})
	}
}

// errorBody is the provider error payload for code and message.
func errorBody(code int, message string) map[string]interface{} {
	return map[string]interface{}{
		"ErrorCode": code,
		"Message":   message,
	}
}

// deleteResponse is the acknowledgement returned by delete endpoints.
func deleteResponse(message string) map[string]interface{} {
	return errorBody(0, message)
}
