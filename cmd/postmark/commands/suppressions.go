package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

const defaultStreamID = "outbound"

// NewSuppressionsCommand creates the suppressions command group
func NewSuppressionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suppressions",
		Aliases: []string{"suppression"},
		Short:   "Manage suppression lists",
	}

	cmd.AddCommand(newSuppressionsListCommand())

	return cmd
}

func newSuppressionsListCommand() *cobra.Command {
	var (
		streamID string
		filter   postmark.SuppressionFilter
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suppressed addresses of a stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			suppressions, err := client.Suppressions().List(context.Background(), streamID, &filter)
			if err != nil {
				return fmt.Errorf("failed to list suppressions: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), suppressions, func(w io.Writer) error {
				if len(suppressions.Suppressions) == 0 {
					_, _ = fmt.Fprintln(w, "No suppressions found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("Email", "Reason", "Origin", "Created")

				for _, suppression := range suppressions.Suppressions {
					_ = table.Append(
						suppression.EmailAddress,
						suppression.SuppressionReason,
						suppression.Origin,
						suppression.CreatedAt.Format(timeFormat),
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&streamID, "stream", defaultStreamID, "message stream ID")
	cmd.Flags().StringVar(&filter.SuppressionReason, "reason", "", "HardBounce, SpamComplaint or ManualSuppression")
	cmd.Flags().StringVar(&filter.Origin, "origin", "", "Recipient, Customer or Admin")
	cmd.Flags().StringVar(&filter.EmailAddress, "email", "", "filter by address")

	return cmd
}
