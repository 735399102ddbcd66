package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// EmailClient implements postmark.EmailClient.
type EmailClient struct {
	httpClient *http.Client
}

// NewEmailClient creates a new email client.
func NewEmailClient(httpClient *http.Client) *EmailClient {
	return &EmailClient{
		httpClient: httpClient,
	}
}

// Send implements postmark.EmailClient.Send.
func (c *EmailClient) Send(ctx context.Context, message *postmark.Message) (*postmark.SendResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/email", message)
	if err != nil {
		return nil, fmt.Errorf("sending email: %w", err)
	}

	return decodeJSON[postmark.SendResponse](resp, "send response")
}

// SendBatch implements postmark.EmailClient.SendBatch. At most
// postmark.MaxBatchSize messages are accepted per call; use
// postmark.BatchSender for longer slices.
func (c *EmailClient) SendBatch(ctx context.Context, messages []postmark.Message) ([]postmark.SendResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/email/batch", messages)
	if err != nil {
		return nil, fmt.Errorf("sending email batch: %w", err)
	}

	results, err := decodeJSON[[]postmark.SendResponse](resp, "batch send response")
	if err != nil {
		return nil, err
	}

	return *results, nil
}

// SendWithTemplate implements postmark.EmailClient.SendWithTemplate.
func (c *EmailClient) SendWithTemplate(ctx context.Context, message *postmark.TemplatedMessage) (*postmark.SendResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/email/withTemplate", message)
	if err != nil {
		return nil, fmt.Errorf("sending templated email: %w", err)
	}

	return decodeJSON[postmark.SendResponse](resp, "templated send response")
}

// SendBatchWithTemplates implements postmark.EmailClient.SendBatchWithTemplates.
func (c *EmailClient) SendBatchWithTemplates(ctx context.Context, messages []postmark.TemplatedMessage) ([]postmark.SendResponse, error) {
	request := postmark.TemplatedBatchRequest{Messages: messages}

	resp, err := c.httpClient.Post(ctx, "/email/batchWithTemplates", request)
	if err != nil {
		return nil, fmt.Errorf("sending templated email batch: %w", err)
	}

	results, err := decodeJSON[[]postmark.SendResponse](resp, "templated batch send response")
	if err != nil {
		return nil, err
	}

	return *results, nil
}
