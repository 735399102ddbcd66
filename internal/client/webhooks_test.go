package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

//nolint:funlen
func TestWebhooksClient(t *testing.T) {
	t.Parallel()

	webhook := postmark.Webhook{
		ID:            1234567,
		URL:           "https://www.example.com/webhook",
		MessageStream: "outbound",
		HTTPAuth:      &postmark.HTTPAuth{Username: "user", Password: "pass"},
		HTTPHeaders:   []postmark.Header{{Name: "name", Value: "value"}},
		Triggers: &postmark.WebhookTriggers{
			Open:   &postmark.OpenWebhookTrigger{Enabled: true, PostFirstOpenOnly: true},
			Bounce: &postmark.ContentWebhookTrigger{Enabled: true, IncludeContent: false},
		},
	}

	RunOperationTests(t, []TestOperation[*postmark.Webhooks]{
		{
			Name:          "list for stream",
			Method:        http.MethodGet,
			ExpectedPath:  "/webhooks",
			ExpectedQuery: map[string]string{"MessageStream": "outbound"},
			Response:      postmark.Webhooks{Webhooks: []postmark.Webhook{webhook}},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Webhooks, error) {
				return NewWebhooksClient(h).List(ctx, &postmark.WebhookFilter{MessageStream: "outbound"})
			},
			Validate: func(t *testing.T, webhooks *postmark.Webhooks) {
				t.Helper()
				require.Len(t, webhooks.Webhooks, 1)
				assert.True(t, webhooks.Webhooks[0].Triggers.Open.PostFirstOpenOnly)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.Webhook]{
		{
			Name:         "get",
			Method:       http.MethodGet,
			ExpectedPath: "/webhooks/1234567",
			Response:     webhook,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Webhook, error) {
				return NewWebhooksClient(h).Get(ctx, 1234567)
			},
			Validate: func(t *testing.T, got *postmark.Webhook) {
				t.Helper()
				assert.Equal(t, webhook.URL, got.URL)
				assert.Equal(t, "user", got.HTTPAuth.Username)
				assert.Nil(t, got.Triggers.Click)
			},
		},
		{
			Name:         "create",
			Method:       http.MethodPost,
			ExpectedPath: "/webhooks",
			ExpectedBody: map[string]interface{}{
				"Url":      "https://www.example.com/webhook",
				"Triggers": map[string]interface{}{"Delivery": map[string]interface{}{"Enabled": true}},
			},
			Response: webhook,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Webhook, error) {
				return NewWebhooksClient(h).Create(ctx, &postmark.WebhookRequest{
					URL:      "https://www.example.com/webhook",
					Triggers: &postmark.WebhookTriggers{Delivery: &postmark.WebhookTrigger{Enabled: true}},
				})
			},
		},
		{
			Name:         "edit",
			Method:       http.MethodPut,
			ExpectedPath: "/webhooks/1234567",
			ExpectedBody: map[string]interface{}{"Url": "https://www.example.com/other"},
			Response:     webhook,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Webhook, error) {
				return NewWebhooksClient(h).Edit(ctx, 1234567, &postmark.WebhookRequest{URL: "https://www.example.com/other"})
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.DefaultResponse]{
		{
			Name:         "delete",
			Method:       http.MethodDelete,
			ExpectedPath: "/webhooks/1234567",
			Response:     deleteResponse("Webhook 1234567 removed."),
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.DefaultResponse, error) {
				return NewWebhooksClient(h).Delete(ctx, 1234567)
			},
		},
	})
}
