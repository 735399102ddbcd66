package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const (
	outboundMessagesPath = "/messages/outbound"
	inboundMessagesPath  = "/messages/inbound"
	opensPath            = "/messages/outbound/opens"
	clicksPath           = "/messages/outbound/clicks"
)

// MessagesClient implements postmark.MessagesClient.
type MessagesClient struct {
	httpClient *http.Client
}

// NewMessagesClient creates a new messages client.
func NewMessagesClient(httpClient *http.Client) *MessagesClient {
	return &MessagesClient{
		httpClient: httpClient,
	}
}

// ListOutbound implements postmark.MessagesClient.ListOutbound.
func (c *MessagesClient) ListOutbound(ctx context.Context, filter *postmark.OutboundMessageFilter) (*postmark.OutboundMessages, error) {
	resp, err := c.httpClient.Get(ctx, outboundMessagesPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing outbound messages: %w", err)
	}

	return decodeJSON[postmark.OutboundMessages](resp, "outbound messages list")
}

// GetOutbound implements postmark.MessagesClient.GetOutbound.
func (c *MessagesClient) GetOutbound(ctx context.Context, messageID string) (*postmark.OutboundMessageDetails, error) {
	resp, err := c.httpClient.Get(ctx, namePath(outboundMessagesPath, messageID)+"/details", nil)
	if err != nil {
		return nil, fmt.Errorf("getting outbound message: %w", err)
	}

	return decodeJSON[postmark.OutboundMessageDetails](resp, "outbound message")
}

// OutboundDump implements postmark.MessagesClient.OutboundDump.
func (c *MessagesClient) OutboundDump(ctx context.Context, messageID string) (*postmark.MessageDump, error) {
	resp, err := c.httpClient.Get(ctx, namePath(outboundMessagesPath, messageID)+"/dump", nil)
	if err != nil {
		return nil, fmt.Errorf("getting outbound message dump: %w", err)
	}

	return decodeJSON[postmark.MessageDump](resp, "message dump")
}

// ListInbound implements postmark.MessagesClient.ListInbound.
func (c *MessagesClient) ListInbound(ctx context.Context, filter *postmark.InboundMessageFilter) (*postmark.InboundMessages, error) {
	resp, err := c.httpClient.Get(ctx, inboundMessagesPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing inbound messages: %w", err)
	}

	return decodeJSON[postmark.InboundMessages](resp, "inbound messages list")
}

// GetInbound implements postmark.MessagesClient.GetInbound.
func (c *MessagesClient) GetInbound(ctx context.Context, messageID string) (*postmark.InboundMessageDetails, error) {
	resp, err := c.httpClient.Get(ctx, namePath(inboundMessagesPath, messageID)+"/details", nil)
	if err != nil {
		return nil, fmt.Errorf("getting inbound message: %w", err)
	}

	return decodeJSON[postmark.InboundMessageDetails](resp, "inbound message")
}

// BypassInbound implements postmark.MessagesClient.BypassInbound.
func (c *MessagesClient) BypassInbound(ctx context.Context, messageID string) (*postmark.DefaultResponse, error) {
	return c.inboundAction(ctx, messageID, "bypass")
}

// RetryInbound implements postmark.MessagesClient.RetryInbound.
func (c *MessagesClient) RetryInbound(ctx context.Context, messageID string) (*postmark.DefaultResponse, error) {
	return c.inboundAction(ctx, messageID, "retry")
}

func (c *MessagesClient) inboundAction(ctx context.Context, messageID, action string) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Put(ctx, namePath(inboundMessagesPath, messageID)+"/"+action, nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s on inbound message: %w", action, err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, action+" response")
}

// ListOpens implements postmark.MessagesClient.ListOpens.
func (c *MessagesClient) ListOpens(ctx context.Context, filter *postmark.TrackingFilter) (*postmark.Opens, error) {
	resp, err := c.httpClient.Get(ctx, opensPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing opens: %w", err)
	}

	return decodeJSON[postmark.Opens](resp, "opens list")
}

// OpensForMessage implements postmark.MessagesClient.OpensForMessage.
func (c *MessagesClient) OpensForMessage(ctx context.Context, messageID string, filter *postmark.Pagination) (*postmark.Opens, error) {
	resp, err := c.httpClient.Get(ctx, namePath(opensPath, messageID), pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing opens for message: %w", err)
	}

	return decodeJSON[postmark.Opens](resp, "opens list")
}

// ListClicks implements postmark.MessagesClient.ListClicks.
func (c *MessagesClient) ListClicks(ctx context.Context, filter *postmark.TrackingFilter) (*postmark.Clicks, error) {
	resp, err := c.httpClient.Get(ctx, clicksPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing clicks: %w", err)
	}

	return decodeJSON[postmark.Clicks](resp, "clicks list")
}

// ClicksForMessage implements postmark.MessagesClient.ClicksForMessage.
func (c *MessagesClient) ClicksForMessage(ctx context.Context, messageID string, filter *postmark.Pagination) (*postmark.Clicks, error) {
	resp, err := c.httpClient.Get(ctx, namePath(clicksPath, messageID), pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing clicks for message: %w", err)
	}

	return decodeJSON[postmark.Clicks](resp, "clicks list")
}
