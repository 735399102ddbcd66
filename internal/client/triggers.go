package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const inboundRulesPath = "/triggers/inboundrules"

// InboundRuleTriggersClient implements postmark.InboundRuleTriggersClient.
type InboundRuleTriggersClient struct {
	httpClient *http.Client
}

// NewInboundRuleTriggersClient creates a new inbound rule triggers client.
func NewInboundRuleTriggersClient(httpClient *http.Client) *InboundRuleTriggersClient {
	return &InboundRuleTriggersClient{
		httpClient: httpClient,
	}
}

// List implements postmark.InboundRuleTriggersClient.List.
func (c *InboundRuleTriggersClient) List(ctx context.Context, filter *postmark.InboundRuleFilter) (*postmark.InboundRuleTriggers, error) {
	resp, err := c.httpClient.Get(ctx, inboundRulesPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing inbound rules: %w", err)
	}

	return decodeJSON[postmark.InboundRuleTriggers](resp, "inbound rules list")
}

// Create implements postmark.InboundRuleTriggersClient.Create.
func (c *InboundRuleTriggersClient) Create(ctx context.Context, rule string) (*postmark.InboundRuleTrigger, error) {
	resp, err := c.httpClient.Post(ctx, inboundRulesPath, postmark.InboundRuleTriggerRequest{Rule: rule})
	if err != nil {
		return nil, fmt.Errorf("creating inbound rule: %w", err)
	}

	return decodeJSON[postmark.InboundRuleTrigger](resp, "inbound rule")
}

// Delete implements postmark.InboundRuleTriggersClient.Delete.
func (c *InboundRuleTriggersClient) Delete(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(inboundRulesPath, int64(id)))
	if err != nil {
		return nil, fmt.Errorf("deleting inbound rule: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}
