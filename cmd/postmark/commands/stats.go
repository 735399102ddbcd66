package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewStatsCommand creates the stats command group
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Show outbound statistics",
	}

	cmd.AddCommand(newStatsOverviewCommand())
	cmd.AddCommand(newStatsSentCommand())

	return cmd
}

func addStatisticsFlags(cmd *cobra.Command, filter *postmark.StatisticsFilter) {
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&filter.MessageStream, "stream", "", "filter by message stream")
	cmd.Flags().StringVar(&filter.FromDate, "from-date", "", "earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.ToDate, "to-date", "", "latest date, YYYY-MM-DD")
}

func newStatsOverviewCommand() *cobra.Command {
	var filter postmark.StatisticsFilter

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the outbound overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			overview, err := client.Stats().OutboundOverview(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to get outbound overview: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), overview, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Metric", "Value")

				_ = table.Append("Sent", strconv.Itoa(overview.Sent))
				_ = table.Append("Bounced", strconv.Itoa(overview.Bounced))
				_ = table.Append("Bounce Rate", strconv.FormatFloat(overview.BounceRate, 'f', 2, 64))
				_ = table.Append("SMTP API Errors", strconv.Itoa(overview.SMTPAPIErrors))
				_ = table.Append("Spam Complaints", strconv.Itoa(overview.SpamComplaints))
				_ = table.Append("Opens", strconv.Itoa(overview.Opens))
				_ = table.Append("Unique Opens", strconv.Itoa(overview.UniqueOpens))
				_ = table.Append("Total Clicks", strconv.Itoa(overview.TotalClicks))
				_ = table.Append("Unique Links Clicked", strconv.Itoa(overview.UniqueLinksClicked))

				return table.Render()
			})
		},
	}

	addStatisticsFlags(cmd, &filter)

	return cmd
}

func newStatsSentCommand() *cobra.Command {
	var filter postmark.StatisticsFilter

	cmd := &cobra.Command{
		Use:   "sent",
		Short: "Show sent counts per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			counts, err := client.Stats().SentCounts(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to get sent counts: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), counts, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Date", "Sent")

				for _, day := range counts.Days {
					_ = table.Append(day.Date, strconv.Itoa(day.Sent))
				}

				_ = table.Append("Total", strconv.Itoa(counts.Sent))

				return table.Render()
			})
		},
	}

	addStatisticsFlags(cmd, &filter)

	return cmd
}
