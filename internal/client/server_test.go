package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	internalhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

func TestServerInfoClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation[*postmark.Server]{
		{
			Name:         "get",
			Method:       http.MethodGet,
			ExpectedPath: "/server",
			Response:     postmark.Server{ID: 1, Name: "Staging", Color: "red", TrackOpens: true},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Server, error) {
				return NewServerInfoClient(h).Get(ctx)
			},
			Validate: func(t *testing.T, server *postmark.Server) {
				t.Helper()
				assert.Equal(t, "Staging", server.Name)
				assert.True(t, server.TrackOpens)
			},
		},
		{
			Name:         "edit",
			Method:       http.MethodPut,
			ExpectedPath: "/server",
			ExpectedBody: map[string]interface{}{"Name": "Production", "TrackOpens": false},
			Response:     postmark.Server{ID: 1, Name: "Production"},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Server, error) {
				return NewServerInfoClient(h).Edit(ctx, &postmark.ServerRequest{Name: "Production", TrackOpens: postmark.Bool(false)})
			},
			Validate: func(t *testing.T, server *postmark.Server) {
				t.Helper()
				assert.Equal(t, "Production", server.Name)
			},
		},
		{
			Name:         "server error",
			Method:       http.MethodGet,
			ExpectedPath: "/server",
			StatusCode:   http.StatusInternalServerError,
			WantKind:     postmark.KindInternalServer,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Server, error) {
				return NewServerInfoClient(h).Get(ctx)
			},
		},
	})
}
