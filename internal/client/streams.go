package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const messageStreamsPath = "/message-streams"

// MessageStreamsClient implements postmark.MessageStreamsClient.
type MessageStreamsClient struct {
	httpClient *http.Client
}

// NewMessageStreamsClient creates a new message streams client.
func NewMessageStreamsClient(httpClient *http.Client) *MessageStreamsClient {
	return &MessageStreamsClient{
		httpClient: httpClient,
	}
}

// List implements postmark.MessageStreamsClient.List.
func (c *MessageStreamsClient) List(ctx context.Context, filter *postmark.MessageStreamFilter) (*postmark.MessageStreams, error) {
	resp, err := c.httpClient.Get(ctx, messageStreamsPath, postmark.EncodeQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing message streams: %w", err)
	}

	return decodeJSON[postmark.MessageStreams](resp, "message streams list")
}

// Get implements postmark.MessageStreamsClient.Get.
func (c *MessageStreamsClient) Get(ctx context.Context, streamID string) (*postmark.MessageStream, error) {
	resp, err := c.httpClient.Get(ctx, namePath(messageStreamsPath, streamID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting message stream: %w", err)
	}

	return decodeJSON[postmark.MessageStream](resp, "message stream")
}

// Create implements postmark.MessageStreamsClient.Create.
func (c *MessageStreamsClient) Create(ctx context.Context, request *postmark.CreateMessageStreamRequest) (*postmark.MessageStream, error) {
	resp, err := c.httpClient.Post(ctx, messageStreamsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating message stream: %w", err)
	}

	return decodeJSON[postmark.MessageStream](resp, "message stream")
}

// Edit implements postmark.MessageStreamsClient.Edit.
func (c *MessageStreamsClient) Edit(ctx context.Context, streamID string, request *postmark.EditMessageStreamRequest) (*postmark.MessageStream, error) {
	resp, err := c.httpClient.Patch(ctx, namePath(messageStreamsPath, streamID), request)
	if err != nil {
		return nil, fmt.Errorf("editing message stream: %w", err)
	}

	return decodeJSON[postmark.MessageStream](resp, "message stream")
}

// Archive implements postmark.MessageStreamsClient.Archive.
func (c *MessageStreamsClient) Archive(ctx context.Context, streamID string) (*postmark.MessageStreamArchive, error) {
	resp, err := c.httpClient.Post(ctx, namePath(messageStreamsPath, streamID)+"/archive", nil)
	if err != nil {
		return nil, fmt.Errorf("archiving message stream: %w", err)
	}

	return decodeJSON[postmark.MessageStreamArchive](resp, "archive response")
}

// Unarchive implements postmark.MessageStreamsClient.Unarchive.
func (c *MessageStreamsClient) Unarchive(ctx context.Context, streamID string) (*postmark.MessageStream, error) {
	resp, err := c.httpClient.Post(ctx, namePath(messageStreamsPath, streamID)+"/unarchive", nil)
	if err != nil {
		return nil, fmt.Errorf("unarchiving message stream: %w", err)
	}

	return decodeJSON[postmark.MessageStream](resp, "message stream")
}
