package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const sendersPath = "/senders"

// SenderSignaturesClient implements postmark.SenderSignaturesClient.
type SenderSignaturesClient struct {
	httpClient *http.Client
}

// NewSenderSignaturesClient creates a new sender signatures client.
func NewSenderSignaturesClient(httpClient *http.Client) *SenderSignaturesClient {
	return &SenderSignaturesClient{
		httpClient: httpClient,
	}
}

// List implements postmark.SenderSignaturesClient.List.
func (c *SenderSignaturesClient) List(ctx context.Context, filter *postmark.SenderSignatureFilter) (*postmark.SenderSignatures, error) {
	resp, err := c.httpClient.Get(ctx, sendersPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing sender signatures: %w", err)
	}

	return decodeJSON[postmark.SenderSignatures](resp, "sender signatures list")
}

// Get implements postmark.SenderSignaturesClient.Get.
func (c *SenderSignaturesClient) Get(ctx context.Context, id int) (*postmark.SenderSignatureDetails, error) {
	resp, err := c.httpClient.Get(ctx, idPath(sendersPath, int64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting sender signature: %w", err)
	}

	return parseSenderSignature(resp)
}

// Create implements postmark.SenderSignaturesClient.Create.
func (c *SenderSignaturesClient) Create(ctx context.Context, request *postmark.SenderSignatureRequest) (*postmark.SenderSignatureDetails, error) {
	resp, err := c.httpClient.Post(ctx, sendersPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating sender signature: %w", err)
	}

	return parseSenderSignature(resp)
}

// Edit implements postmark.SenderSignaturesClient.Edit.
func (c *SenderSignaturesClient) Edit(ctx context.Context, id int, request *postmark.SenderSignatureRequest) (*postmark.SenderSignatureDetails, error) {
	resp, err := c.httpClient.Put(ctx, idPath(sendersPath, int64(id)), request)
	if err != nil {
		return nil, fmt.Errorf("editing sender signature: %w", err)
	}

	return parseSenderSignature(resp)
}

// Delete implements postmark.SenderSignaturesClient.Delete.
func (c *SenderSignaturesClient) Delete(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(sendersPath, int64(id)))
	if err != nil {
		return nil, fmt.Errorf("deleting sender signature: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}

// ResendConfirmation implements postmark.SenderSignaturesClient.ResendConfirmation.
func (c *SenderSignaturesClient) ResendConfirmation(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Post(ctx, idPath(sendersPath, int64(id))+"/resend", nil)
	if err != nil {
		return nil, fmt.Errorf("resending sender confirmation: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "resend response")
}

func parseSenderSignature(resp *http.Response) (*postmark.SenderSignatureDetails, error) {
	return decodeJSON[postmark.SenderSignatureDetails](resp, "sender signature")
}
