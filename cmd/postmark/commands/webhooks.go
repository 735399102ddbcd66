package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewWebhooksCommand creates the webhooks command group
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhooks",
	}

	cmd.AddCommand(newWebhooksListCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var filter postmark.WebhookFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			webhooks, err := client.Webhooks().List(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), webhooks, func(w io.Writer) error {
				if len(webhooks.Webhooks) == 0 {
					_, _ = fmt.Fprintln(w, "No webhooks found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "URL", "Stream", "Triggers")

				for _, webhook := range webhooks.Webhooks {
					_ = table.Append(strconv.Itoa(webhook.ID), webhook.URL, webhook.MessageStream, enabledTriggers(webhook.Triggers))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&filter.MessageStream, "stream", "", "filter by message stream")

	return cmd
}

func enabledTriggers(triggers *postmark.WebhookTriggers) string {
	if triggers == nil {
		return ""
	}

	var names []string

	if triggers.Open != nil && triggers.Open.Enabled {
		names = append(names, "Open")
	}

	if triggers.Click != nil && triggers.Click.Enabled {
		names = append(names, "Click")
	}

	if triggers.Delivery != nil && triggers.Delivery.Enabled {
		names = append(names, "Delivery")
	}

	if triggers.Bounce != nil && triggers.Bounce.Enabled {
		names = append(names, "Bounce")
	}

	if triggers.SpamComplaint != nil && triggers.SpamComplaint.Enabled {
		names = append(names, "SpamComplaint")
	}

	if triggers.SubscriptionChange != nil && triggers.SubscriptionChange.Enabled {
		names = append(names, "SubscriptionChange")
	}

	return strings.Join(names, ",")
}
