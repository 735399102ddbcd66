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
func TestBouncesClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation[*postmark.Bounces]{
		{
			Name:          "list with filter",
			Method:        http.MethodGet,
			ExpectedPath:  "/bounces",
			ExpectedQuery: map[string]string{"count": "25", "offset": "50", "type": "HardBounce", "inactive": "true"},
			Response: postmark.Bounces{
				TotalCount: 1,
				Bounces:    []postmark.Bounce{{ID: 692560173, Type: "HardBounce", Email: "bounced@example.com"}},
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Bounces, error) {
				return NewBouncesClient(h).List(ctx, &postmark.BounceFilter{
					Pagination: postmark.Pagination{Count: 25, Offset: 50},
					Type:       "HardBounce",
					Inactive:   postmark.Bool(true),
				})
			},
			Validate: func(t *testing.T, bounces *postmark.Bounces) {
				t.Helper()
				assert.Equal(t, 1, bounces.TotalCount)
				assert.Equal(t, int64(692560173), bounces.Bounces[0].ID)
			},
		},
		{
			Name:         "rate limited",
			Method:       http.MethodGet,
			ExpectedPath: "/bounces",
			StatusCode:   http.StatusTooManyRequests,
			WantKind:     postmark.KindRateLimitExceeded,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Bounces, error) {
				return NewBouncesClient(h).List(ctx, nil)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.Bounce]{
		{
			Name:         "get",
			Method:       http.MethodGet,
			ExpectedPath: "/bounces/692560173",
			Response:     postmark.Bounce{ID: 692560173, Email: "bounced@example.com", CanActivate: true},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.Bounce, error) {
				return NewBouncesClient(h).Get(ctx, 692560173)
			},
			Validate: func(t *testing.T, bounce *postmark.Bounce) {
				t.Helper()
				assert.True(t, bounce.CanActivate)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.BounceDump]{
		{
			Name:         "dump",
			Method:       http.MethodGet,
			ExpectedPath: "/bounces/692560173/dump",
			Response:     postmark.BounceDump{Body: "SMTP dump data"},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.BounceDump, error) {
				return NewBouncesClient(h).Dump(ctx, 692560173)
			},
			Validate: func(t *testing.T, dump *postmark.BounceDump) {
				t.Helper()
				assert.Equal(t, "SMTP dump data", dump.Body)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.BounceActivation]{
		{
			Name:         "activate",
			Method:       http.MethodPut,
			ExpectedPath: "/bounces/692560173/activate",
			Response:     postmark.BounceActivation{Message: "OK", Bounce: postmark.Bounce{ID: 692560173}},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.BounceActivation, error) {
				return NewBouncesClient(h).Activate(ctx, 692560173)
			},
			Validate: func(t *testing.T, activation *postmark.BounceActivation) {
				t.Helper()
				assert.Equal(t, "OK", activation.Message)
				assert.Equal(t, int64(692560173), activation.Bounce.ID)
			},
		},
		{
			Name:         "activate unknown bounce",
			Method:       http.MethodPut,
			ExpectedPath: "/bounces/1/activate",
			StatusCode:   http.StatusNotFound,
			WantKind:     postmark.KindPostmarkError,
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.BounceActivation, error) {
				return NewBouncesClient(h).Activate(ctx, 1)
			},
		},
	})

	RunOperationTests(t, []TestOperation[*postmark.DeliveryStatistics]{
		{
			Name:         "delivery statistics",
			Method:       http.MethodGet,
			ExpectedPath: "/deliverystats",
			Response: postmark.DeliveryStatistics{
				InactiveMails: 192,
				Bounces:       []postmark.BounceTypeCount{{Name: "All", Count: 253}},
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.DeliveryStatistics, error) {
				return NewBouncesClient(h).DeliveryStatistics(ctx)
			},
			Validate: func(t *testing.T, stats *postmark.DeliveryStatistics) {
				t.Helper()
				assert.Equal(t, 192, stats.InactiveMails)
				assert.Equal(t, 253, stats.Bounces[0].Count)
			},
		},
	})
}
