package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// TemplatesClient implements postmark.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// List implements postmark.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context, filter *postmark.TemplateFilter) (*postmark.Templates, error) {
	resp, err := c.httpClient.Get(ctx, "/templates", pagedQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	return decodeJSON[postmark.Templates](resp, "templates list")
}

// Get implements postmark.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, idOrAlias string) (*postmark.Template, error) {
	resp, err := c.httpClient.Get(ctx, namePath("/templates", idOrAlias), nil)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	return decodeJSON[postmark.Template](resp, "template")
}

// Create implements postmark.TemplatesClient.Create.
func (c *TemplatesClient) Create(ctx context.Context, request *postmark.TemplateRequest) (*postmark.TemplateReference, error) {
	resp, err := c.httpClient.Post(ctx, "/templates", request)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	return decodeJSON[postmark.TemplateReference](resp, "template response")
}

// Edit implements postmark.TemplatesClient.Edit.
func (c *TemplatesClient) Edit(ctx context.Context, idOrAlias string, request *postmark.TemplateRequest) (*postmark.TemplateReference, error) {
	resp, err := c.httpClient.Put(ctx, namePath("/templates", idOrAlias), request)
	if err != nil {
		return nil, fmt.Errorf("editing template: %w", err)
	}

	return decodeJSON[postmark.TemplateReference](resp, "template response")
}

// Delete implements postmark.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, idOrAlias string) (*postmark.DefaultResponse, error) {
	resp, err := c.httpClient.Delete(ctx, namePath("/templates", idOrAlias))
	if err != nil {
		return nil, fmt.Errorf("deleting template: %w", err)
	}

	return decodeJSON[postmark.DefaultResponse](resp, "delete response")
}

// Validate implements postmark.TemplatesClient.Validate.
func (c *TemplatesClient) Validate(ctx context.Context, request *postmark.TemplateValidationRequest) (*postmark.TemplateValidation, error) {
	resp, err := c.httpClient.Post(ctx, "/templates/validate", request)
	if err != nil {
		return nil, fmt.Errorf("validating template: %w", err)
	}

	return decodeJSON[postmark.TemplateValidation](resp, "template validation")
}

// TemplatePushClient implements postmark.AccountTemplatesClient.
type TemplatePushClient struct {
	httpClient *http.Client
}

// NewTemplatePushClient creates a new template push client.
func NewTemplatePushClient(httpClient *http.Client) *TemplatePushClient {
	return &TemplatePushClient{
		httpClient: httpClient,
	}
}

// Push implements postmark.AccountTemplatesClient.Push.
func (c *TemplatePushClient) Push(ctx context.Context, request *postmark.TemplatePushRequest) (*postmark.TemplatePushResult, error) {
	resp, err := c.httpClient.Put(ctx, "/templates/push", request)
	if err != nil {
		return nil, fmt.Errorf("pushing templates: %w", err)
	}

	return decodeJSON[postmark.TemplatePushResult](resp, "template push result")
}
