package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// WebhooksClient implements postmark.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// List implements postmark.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, filter *postmark.WebhookFilter) (*postmark.Webhooks, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks", postmark.EncodeQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	return decodeJSON[postmark.Webhooks](resp, "webhooks list")
}

// Get implements postmark.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, id int) (*postmark.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, idPath("/webhooks", int64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return decodeJSON[postmark.Webhook](resp, "webhook")
}

// Create implements postmark.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *postmark.WebhookRequest) (*postmark.Webhook, error) {
	resp, err := c.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decodeJSON[postmark.Webhook](resp, "webhook")
}

// Edit implements postmark.WebhooksClient.Edit.
func (c *WebhooksClient) Edit(ctx context.Context, id int, request *postmark.WebhookRequest) (*postmark.Webhook, error) {
	resp, err := c.httpClient.Put(ctx, idPath("/webhooks", int64(id)), request)
	if err != nil {
		return nil, fmt.Errorf("editing webhook: %w", err)
	}

	return decodeJSON[postmark.Webhook](resp, "webhook")
}

// Delete implements postmark.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, idPath("/webhooks", int64(id)))
	if err != nil {
		return nil, fmt.Errorf("deleting webhook: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}
