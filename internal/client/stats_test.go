package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

func TestStatsClient_Paths(t *testing.T) {
	t.Parallel()

	filter := &postmark.StatisticsFilter{Tag: "welcome", FromDate: "2024-01-01", ToDate: "2024-01-31"}

	calls := []struct {
		name string
		path string
		call func(context.Context, *StatsClient) error
	}{
		{"overview", "/stats/outbound", func(ctx context.Context, c *StatsClient) error {
			_, err := c.OutboundOverview(ctx, filter)

			return err
		}},
		{"sends", "/stats/outbound/sends", func(ctx context.Context, c *StatsClient) error {
			_, err := c.SentCounts(ctx, filter)

			return err
		}},
		{"bounces", "/stats/outbound/bounces", func(ctx context.Context, c *StatsClient) error {
			_, err := c.BounceCounts(ctx, filter)

			return err
		}},
		{"spam", "/stats/outbound/spam", func(ctx context.Context, c *StatsClient) error {
			_, err := c.SpamComplaints(ctx, filter)

			return err
		}},
		{"tracked", "/stats/outbound/tracked", func(ctx context.Context, c *StatsClient) error {
			_, err := c.TrackedEmailCounts(ctx, filter)

			return err
		}},
		{"opens", "/stats/outbound/opens", func(ctx context.Context, c *StatsClient) error {
			_, err := c.OpenCounts(ctx, filter)

			return err
		}},
		{"open platforms", "/stats/outbound/opens/platforms", func(ctx context.Context, c *StatsClient) error {
			_, err := c.OpenPlatformUsage(ctx, filter)

			return err
		}},
		{"email clients", "/stats/outbound/opens/emailclients", func(ctx context.Context, c *StatsClient) error {
			_, err := c.OpenClientUsage(ctx, filter)

			return err
		}},
		{"read times", "/stats/outbound/opens/readtimes", func(ctx context.Context, c *StatsClient) error {
			_, err := c.OpenReadTimes(ctx, filter)

			return err
		}},
		{"clicks", "/stats/outbound/clicks", func(ctx context.Context, c *StatsClient) error {
			_, err := c.ClickCounts(ctx, filter)

			return err
		}},
		{"browser families", "/stats/outbound/clicks/browserfamilies", func(ctx context.Context, c *StatsClient) error {
			_, err := c.ClickBrowserUsage(ctx, filter)

			return err
		}},
		{"click platforms", "/stats/outbound/clicks/platforms", func(ctx context.Context, c *StatsClient) error {
			_, err := c.ClickPlatformUsage(ctx, filter)

			return err
		}},
		{"click location", "/stats/outbound/clicks/location", func(ctx context.Context, c *StatsClient) error {
			_, err := c.ClickLocation(ctx, filter)

			return err
		}},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "fromdate=2024-01-01&tag=welcome&todate=2024-01-31", r.URL.RawQuery)

				_, _ = w.Write([]byte(`{"Days":[]}`))
			}))
			defer server.Close()

			require.NoError(t, tt.call(context.Background(), NewStatsClient(newTestHTTPClient(t, server.URL))))
		})
	}
}

func TestStatsClient_Decoding(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation[*postmark.SentCounts]{
		{
			Name:         "sent counts",
			Method:       http.MethodGet,
			ExpectedPath: "/stats/outbound/sends",
			Response: map[string]interface{}{
				"Days": []map[string]interface{}{{"Date": "2024-01-01", "Sent": 140}},
				"Sent": 615,
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (*postmark.SentCounts, error) {
				return NewStatsClient(h).SentCounts(ctx, nil)
			},
			Validate: func(t *testing.T, counts *postmark.SentCounts) {
				t.Helper()
				assert.Equal(t, 615, counts.Sent)
				require.Len(t, counts.Days, 1)
				assert.Equal(t, 140, counts.Days[0].Sent)
			},
		},
	})

	RunOperationTests(t, []TestOperation[postmark.DynamicStats]{
		{
			Name:         "email client usage",
			Method:       http.MethodGet,
			ExpectedPath: "/stats/outbound/opens/emailclients",
			Response: map[string]interface{}{
				"Days":         []map[string]interface{}{{"Date": "2024-01-01", "Apple Mail": 7}},
				"Apple Mail":   7,
				"Outlook 2016": 3,
				"Gmail":        12,
			},
			Call: func(ctx context.Context, h *internalhttp.Client) (postmark.DynamicStats, error) {
				return NewStatsClient(h).OpenClientUsage(ctx, nil)
			},
			Validate: func(t *testing.T, stats postmark.DynamicStats) {
				t.Helper()

				totals := stats.Totals()
				assert.Len(t, totals, 3)
				assert.InDelta(t, 12, totals["Gmail"], 0)

				days := stats.Days()
				require.Len(t, days, 1)
				assert.Equal(t, "2024-01-01", days[0]["Date"])
			},
		},
	})
}
