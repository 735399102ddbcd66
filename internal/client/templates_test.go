package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	internalhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

//nolint:funlen
func TestTemplatesClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation[*postmark.Templates]{
		{
			Name:          "list layouts",
			Method:        http.MethodGet,
			ExpectedPath:  "/templates",
			ExpectedQuery: map[string]string{"count": "100", "offset": "0", "TemplateType": "Layout"},
			Response: postmark.Templates{
				TotalCount: 1,
				Templates:  []postmark.TemplateSummary{{TemplateID: 1, Name: "Base", TemplateType: postmark.TemplateTypeLayout}},
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Templates, error) {
				return NewTemplatesClient(h).List(ctx, &postmark.TemplateFilter{TemplateType: postmark.TemplateTypeLayout})
			},
			Validate: func(t *testing.T, templates *postmark.Templates) {
				t.Helper()
				assert.Equal(t, "Base", templates.Templates[0].Name)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.Template]{
		{
			Name:         "get by id",
			Method:       http.MethodGet,
			ExpectedPath: "/templates/1234",
			Response:     postmark.Template{TemplateID: 1234, Name: "Welcome", Subject: "Hi {{name}}"},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Template, error) {
				return NewTemplatesClient(h).Get(ctx, "1234")
			},
			Validate: func(t *testing.T, template *postmark.Template) {
				t.Helper()
				assert.Equal(t, 1234, template.TemplateID)
				assert.Equal(t, "Hi {{name}}", template.Subject)
			},
		},
		{
			Name:         "get by alias is escaped",
			Method:       http.MethodGet,
			ExpectedPath: "/templates/welcome%20v2",
			Response:     postmark.Template{TemplateID: 7, Alias: "welcome v2"},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Template, error) {
				return NewTemplatesClient(h).Get(ctx, "welcome v2")
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.TemplateReference]{
		{
			Name:         "create",
			Method:       http.MethodPost,
			ExpectedPath: "/templates",
			ExpectedBody: map[string]interface{}{"Name": "Welcome", "Alias": "welcome", "Subject": "Hi"},
			Response:     postmark.TemplateReference{TemplateID: 99, Name: "Welcome", Active: true},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.TemplateReference, error) {
				return NewTemplatesClient(h).Create(ctx, &postmark.TemplateRequest{Name: "Welcome", Alias: "welcome", Subject: "Hi"})
			},
			Validate: func(t *testing.T, ref *postmark.TemplateReference) {
				t.Helper()
				assert.Equal(t, 99, ref.TemplateID)
			},
		},
		{
			Name:         "edit",
			Method:       http.MethodPut,
			ExpectedPath: "/templates/welcome",
			ExpectedBody: map[string]interface{}{"Subject": "Hello"},
			Response:     postmark.TemplateReference{TemplateID: 99, Alias: "welcome"},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.TemplateReference, error) {
				return NewTemplatesClient(h).Edit(ctx, "welcome", &postmark.TemplateRequest{Subject: "Hello"})
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.DefaultResponse]{
		{
			Name:         "delete",
			Method:       http.MethodDelete,
			ExpectedPath: "/templates/99",
			Response:     deleteResponse("Template 99 removed."),
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.DefaultResponse, error) {
				return NewTemplatesClient(h).Delete(ctx, "99")
			},
			Validate: func(t *testing.T, resp *postmark.DefaultResponse) {
				t.Helper()
				assert.Equal(t, "Template 99 removed.", resp.Message)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.TemplateValidation]{
		{
			Name:         "validate",
			Method:       http.MethodPost,
			ExpectedPath: "/templates/validate",
			ExpectedBody: map[string]interface{}{"Subject": "{{#each}}"},
			Response: postmark.TemplateValidation{
				AllContentIsValid: false,
				Subject: postmark.TemplateValidationResult{
					ValidationErrors: []postmark.TemplateValidationError{{Message: "unclosed block", Line: 1}},
				},
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.TemplateValidation, error) {
				return NewTemplatesClient(h).Validate(ctx, &postmark.TemplateValidationRequest{Subject: "{{#each}}"})
			},
			Validate: func(t *testing.T, validation *postmark.TemplateValidation) {
				t.Helper()
				assert.False(t, validation.AllContentIsValid)
				assert.Equal(t, "unclosed block", validation.Subject.ValidationErrors[0].Message)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.TemplatePushResult]{
		{
			Name:         "push",
			Method:       http.MethodPut,
			ExpectedPath: "/templates/push",
			ExpectedBody: map[string]interface{}{
				"SourceServerID":      float64(1),
				"DestinationServerID": float64(2),
				"PerformChanges":      false,
			},
			Response: postmark.TemplatePushResult{
				TotalCount: 1,
				Templates:  []postmark.TemplatePushAction{{Action: "Create", TemplateID: 5, Alias: "welcome"}},
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.TemplatePushResult, error) {
				return NewTemplatePushClient(h).Push(ctx, &postmark.TemplatePushRequest{SourceServerID: 1, DestinationServerID: 2})
			},
			Validate: func(t *testing.T, result *postmark.TemplatePushResult) {
				t.Helper()
				assert.Equal(t, "Create", result.Templates[0].Action)
			},
		},
	})
}
