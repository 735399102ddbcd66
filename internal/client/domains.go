package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const domainsPath = "/domains"

// DomainsClient implements postmark.DomainsClient.
type DomainsClient struct {
	httpClient *http.Client
}

// NewDomainsClient creates a new domains client.
func NewDomainsClient(httpClient *http.Client) *DomainsClient {
	return &DomainsClient{
		httpClient: httpClient,
	}
}

// List implements postmark.DomainsClient.List.
func (c *DomainsClient) List(ctx context.Context, filter *postmark.DomainFilter) (*postmark.Domains, error) {
	resp, err := c.httpClient.Get(ctx, domainsPath, pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return decodeJSON[postmark.Domains](resp, "domains list")
}

// Get implements postmark.DomainsClient.Get.
func (c *DomainsClient) Get(ctx context.Context, id int) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Get(ctx, idPath(domainsPath, int64(id)), nil)
	if err != nil {
		return nil, fmt.Errorf("getting domain: %w", err)
	}

	return parseDomainDetails(resp)
}

// Create implements postmark.DomainsClient.Create.
func (c *DomainsClient) Create(ctx context.Context, request *postmark.DomainRequest) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Post(ctx, domainsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating domain: %w", err)
	}

	return parseDomainDetails(resp)
}

// Edit implements postmark.DomainsClient.Edit.
func (c *DomainsClient) Edit(ctx context.Context, id int, request *postmark.DomainRequest) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Put(ctx, idPath(domainsPath, int64(id)), request)
	if err != nil {
		return nil, fmt.Errorf("editing domain: %w", err)
	}

	return parseDomainDetails(resp)
}

// Delete implements postmark.DomainsClient.Delete.
func (c *DomainsClient) Delete(ctx context.Context, id int) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, idPath(domainsPath, int64(id)))
	if err != nil {
		return nil, fmt.Errorf("deleting domain: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}

// VerifyDKIM implements postmark.DomainsClient.VerifyDKIM.
func (c *DomainsClient) VerifyDKIM(ctx context.Context, id int) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Put(ctx, idPath(domainsPath, int64(id))+"/verifyDkim", nil)
	if err != nil {
		return nil, fmt.Errorf("verifying domain DKIM: %w", err)
	}

	return parseDomainDetails(resp)
}

// VerifyReturnPath implements postmark.DomainsClient.VerifyReturnPath.
func (c *DomainsClient) VerifyReturnPath(ctx context.Context, id int) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Put(ctx, idPath(domainsPath, int64(id))+"/verifyReturnPath", nil)
	if err != nil {
		return nil, fmt.Errorf("verifying domain return path: %w", err)
	}

	return parseDomainDetails(resp)
}

// RotateDKIM implements postmark.DomainsClient.RotateDKIM.
func (c *DomainsClient) RotateDKIM(ctx context.Context, id int) (*postmark.DomainDetails, error) {
	resp, err := c.httpClient.Post(ctx, idPath(domainsPath, int64(id))+"/rotatedkim", nil)
	if err != nil {
		return nil, fmt.Errorf("rotating domain DKIM: %w", err)
	}

	return parseDomainDetails(resp)
}

func parseDomainDetails(resp *http.Response) (*postmark.DomainDetails, error) {
	return decodeJSON[postmark.DomainDetails](resp, "domain")
}
