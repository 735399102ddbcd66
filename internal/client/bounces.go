package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// BouncesClient implements postmark.BouncesClient.
type BouncesClient struct {
	httpClient *http.Client
}

// NewBouncesClient creates a new bounces client.
func NewBouncesClient(httpClient *http.Client) *BouncesClient {
	return &BouncesClient{
		httpClient: httpClient,
	}
}

// List implements postmark.BouncesClient.List.
func (c *BouncesClient) List(ctx context.Context, filter *postmark.BounceFilter) (*postmark.Bounces, error) {
	resp, err := c.httpClient.Get(ctx, "/bounces", pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing bounces: %w", err)
	}

	return decodeJSON[postmark.Bounces](resp, "bounces list")
}

// Get implements postmark.BouncesClient.Get.
func (c *BouncesClient) Get(ctx context.Context, id int64) (*postmark.Bounce, error) {
	resp, err := c.httpClient.Get(ctx, idPath("/bounces", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting bounce: %w", err)
	}

	return decodeJSON[postmark.Bounce](resp, "bounce")
}

// Dump implements postmark.BouncesClient.Dump.
func (c *BouncesClient) Dump(ctx context.Context, id int64) (*postmark.BounceDump, error) {
	resp, err := c.httpClient.Get(ctx, idPath("/bounces", id)+"/dump", nil)
	if err != nil {
		return nil, fmt.Errorf("getting bounce dump: %w", err)
	}

	return decodeJSON[postmark.BounceDump](resp, "bounce dump")
}

// Activate implements postmark.BouncesClient.Activate.
func (c *BouncesClient) Activate(ctx context.Context, id int64) (*postmark.BounceActivation, error) {
	resp, err := c.httpClient.Put(ctx, idPath("/bounces", id)+"/activate", nil)
	if err != nil {
		return nil, fmt.Errorf("activating bounce: %w", err)
	}

	return decodeJSON[postmark.BounceActivation](resp, "bounce activation")
}

// DeliveryStatistics implements postmark.BouncesClient.DeliveryStatistics.
func (c *BouncesClient) DeliveryStatistics(ctx context.Context) (*postmark.DeliveryStatistics, error) {
	resp, err := c.httpClient.Get(ctx, "/deliverystats", nil)
	if err != nil {
		return nil, fmt.Errorf("getting delivery statistics: %w", err)
	}

	return decodeJSON[postmark.DeliveryStatistics](resp, "delivery statistics")
}
