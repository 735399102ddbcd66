package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// ServerInfoClient implements postmark.ServerInfoClient.
type ServerInfoClient struct {
	httpClient *http.Client
}

// NewServerInfoClient creates a new server info client.
func NewServerInfoClient(httpClient *http.Client) *ServerInfoClient {
	return &ServerInfoClient{
		httpClient: httpClient,
	}
}

// Get implements postmark.ServerInfoClient.Get.
func (c *ServerInfoClient) Get(ctx context.Context) (*postmark.Server, error) {
	resp, err := c.httpClient.Get(ctx, "/server", nil)
	if err != nil {
		return nil, fmt.Errorf("getting server: %w", err)
	}

	return decodeJSON[postmark.Server](resp, "server")
}

// Edit implements postmark.ServerInfoClient.Edit.
func (c *ServerInfoClient) Edit(ctx context.Context, request *postmark.ServerRequest) (*postmark.Server, error) {
	resp, err := c.httpClient.Put(ctx, "/server", request)
	if err != nil {
		return nil, fmt.Errorf("editing server: %w", err)
	}

	return decodeJSON[postmark.Server](resp, "server")
}
