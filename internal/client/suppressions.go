package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// SuppressionsClient implements postmark.SuppressionsClient.
type SuppressionsClient struct {
	httpClient *http.Client
}

// NewSuppressionsClient creates a new suppressions client.
func NewSuppressionsClient(httpClient *http.Client) *SuppressionsClient {
	return &SuppressionsClient{
		httpClient: httpClient,
	}
}

func suppressionsPath(streamID string) string {
	return namePath(messageStreamsPath, streamID) + "/suppressions"
}

// List implements postmark.SuppressionsClient.List.
func (c *SuppressionsClient) List(ctx context.Context, streamID string, filter *postmark.SuppressionFilter) (*postmark.Suppressions, error) {
	resp, err := c.httpClient.Get(ctx, suppressionsPath(streamID)+"/dump", postmark.EncodeQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing suppressions: %w", err)
	}

	return decodeJSON[postmark.Suppressions](resp, "suppressions list")
}

// Create implements postmark.SuppressionsClient.Create.
func (c *SuppressionsClient) Create(ctx context.Context, streamID string, request *postmark.SuppressionRequest) (*postmark.SuppressionResults, error) {
	resp, err := c.httpClient.Post(ctx, suppressionsPath(streamID), request)
	if err != nil {
		return nil, fmt.Errorf("creating suppressions: %w", err)
	}

	return decodeJSON[postmark.SuppressionResults](resp, "suppression results")
}

// Delete implements postmark.SuppressionsClient.Delete.
func (c *SuppressionsClient) Delete(ctx context.Context, streamID string, request *postmark.SuppressionRequest) (*postmark.SuppressionResults, error) {
	resp, err := c.httpClient.Post(ctx, suppressionsPath(streamID)+"/delete", request)
	if err != nil {
		return nil, fmt.Errorf("deleting suppressions: %w", err)
	}

	return decodeJSON[postmark.SuppressionResults](resp, "suppression results")
}
