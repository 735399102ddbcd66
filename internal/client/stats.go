package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const statsPath = "/stats/outbound"

// StatsClient implements postmark.StatsClient. Statistics endpoints are not
// paginated, so filters are sent as given.
type StatsClient struct {
	httpClient *http.Client
}

// NewStatsClient creates a new statistics client.
func NewStatsClient(httpClient *http.Client) *StatsClient {
	return &StatsClient{
		httpClient: httpClient,
	}
}

// getStats loads one statistics endpoint into T.
func getStats[T any](ctx context.Context, c *StatsClient, subPath, name string, filter *postmark.StatisticsFilter) (*T, error) {
	resp, err := c.httpClient.Get(ctx, statsPath+subPath, postmark.EncodeQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", name, err)
	}

	return decodeJSON[T](resp, name)
}

func getDynamicStats(ctx context.Context, c *StatsClient, subPath, name string, filter *postmark.StatisticsFilter) (postmark.DynamicStats, error) {
	stats, err := getStats[postmark.DynamicStats](ctx, c, subPath, name, filter)
	if err != nil {
		return nil, err
	}

	return *stats, nil
}

// OutboundOverview implements postmark.StatsClient.OutboundOverview.
func (c *StatsClient) OutboundOverview(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.OutboundOverview, error) {
	return getStats[postmark.OutboundOverview](ctx, c, "", "outbound overview", filter)
}

// SentCounts implements postmark.StatsClient.SentCounts.
func (c *StatsClient) SentCounts(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.SentCounts, error) {
	return getStats[postmark.SentCounts](ctx, c, "/sends", "sent counts", filter)
}

// BounceCounts implements postmark.StatsClient.BounceCounts.
func (c *StatsClient) BounceCounts(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.BounceCounts, error) {
	return getStats[postmark.BounceCounts](ctx, c, "/bounces", "bounce counts", filter)
}

// SpamComplaints implements postmark.StatsClient.SpamComplaints.
func (c *StatsClient) SpamComplaints(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.SpamComplaints, error) {
	return getStats[postmark.SpamComplaints](ctx, c, "/spam", "spam complaints", filter)
}

// TrackedEmailCounts implements postmark.StatsClient.TrackedEmailCounts.
func (c *StatsClient) TrackedEmailCounts(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.TrackedEmailCounts, error) {
	return getStats[postmark.TrackedEmailCounts](ctx, c, "/tracked", "tracked email counts", filter)
}

// OpenCounts implements postmark.StatsClient.OpenCounts.
func (c *StatsClient) OpenCounts(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.OpenCounts, error) {
	return getStats[postmark.OpenCounts](ctx, c, "/opens", "open counts", filter)
}

// OpenPlatformUsage implements postmark.StatsClient.OpenPlatformUsage.
func (c *StatsClient) OpenPlatformUsage(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.PlatformUsage, error) {
	return getStats[postmark.PlatformUsage](ctx, c, "/opens/platforms", "open platform usage", filter)
}

// OpenClientUsage implements postmark.StatsClient.OpenClientUsage.
func (c *StatsClient) OpenClientUsage(ctx context.Context, filter *postmark.StatisticsFilter) (postmark.DynamicStats, error) {
	return getDynamicStats(ctx, c, "/opens/emailclients", "open client usage", filter)
}

// OpenReadTimes implements postmark.StatsClient.OpenReadTimes.
func (c *StatsClient) OpenReadTimes(ctx context.Context, filter *postmark.StatisticsFilter) (postmark.DynamicStats, error) {
	return getDynamicStats(ctx, c, "/opens/readtimes", "open read times", filter)
}

// ClickCounts implements postmark.StatsClient.ClickCounts.
func (c *StatsClient) ClickCounts(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.ClickCounts, error) {
	return getStats[postmark.ClickCounts](ctx, c, "/clicks", "click counts", filter)
}

// ClickBrowserUsage implements postmark.StatsClient.ClickBrowserUsage.
func (c *StatsClient) ClickBrowserUsage(ctx context.Context, filter *postmark.StatisticsFilter) (postmark.DynamicStats, error) {
	return getDynamicStats(ctx, c, "/clicks/browserfamilies", "click browser usage", filter)
}

// ClickPlatformUsage implements postmark.StatsClient.ClickPlatformUsage.
func (c *StatsClient) ClickPlatformUsage(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.PlatformUsage, error) {
	return getStats[postmark.PlatformUsage](ctx, c, "/clicks/platforms", "click platform usage", filter)
}

// ClickLocation implements postmark.StatsClient.ClickLocation.
func (c *StatsClient) ClickLocation(ctx context.Context, filter *postmark.StatisticsFilter) (*postmark.ClickLocation, error) {
	return getStats[postmark.ClickLocation](ctx, c, "/clicks/location", "click location", filter)
}
