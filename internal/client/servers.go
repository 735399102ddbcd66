package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const serversPath = "/servers"

// ServersClient implements postmark.ServersClient.
type ServersClient struct {
	httpClient *http.Client
}

// NewServersClient creates a new servers client.
func NewServersClient(httpClient *http.Client) *ServersClient {
	return &ServersClient{
		httpClient: httpClient,
	}
}

// List implements postmark.ServersClient.List.
func (c *ServersClient) List(ctx context.Context, filter *postmark.ServerFilter) (*postmark.Servers, error) {
	resp, err := c.httpClient.Get(ctx, serversPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing servers: %w", err)
	}

	return decodeJSON[postmark.Servers](resp, "servers list")
}

// Get implements postmark.ServersClient.Get.
func (c *ServersClient) Get(ctx context.Context, id int) (*postmark.Server, error) {
	resp, err := c.httpClient.Get(ctx, idPath(serversPath, int64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting server: %w", err)
	}

	return decodeJSON[postmark.Server](resp, "server")
}

// Create implements postmark.ServersClient.Create.
func (c *ServersClient) Create(ctx context.Context, request *postmark.ServerRequest) (*postmark.Server, error) {
	resp, err := c.httpClient.Post(ctx, serversPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	return decodeJSON[postmark.Server](resp, "server")
}

// Edit implements postmark.ServersClient.Edit.
func (c *ServersClient) Edit(ctx context.Context, id int, request *postmark.ServerRequest) (*postmark.Server, error) {
	resp, err := c.httpClient.Put(ctx, idPath(serversPath, int64(id)), request)
	if err != nil {
		return nil, fmt.Errorf("editing server: %w", err)
	}

	return decodeJSON[postmark.Server](resp, "server")
}

// Delete implements postmark.ServersClient.Delete.
func (c *ServersClient) Delete(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(serversPath, int64(id)))
	if err != nil {
		return nil, fmt.Errorf("deleting server: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}
