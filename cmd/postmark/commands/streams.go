package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewStreamsCommand creates the message streams command group
func NewStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streams",
		Aliases: []string{"stream", "message-streams"},
		Short:   "Manage message streams",
	}

	cmd.AddCommand(newStreamsListCommand())

	return cmd
}

func newStreamsListCommand() *cobra.Command {
	var filter postmark.MessageStreamFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List message streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			streams, err := client.MessageStreams().List(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to list message streams: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), streams, func(w io.Writer) error {
				if len(streams.MessageStreams) == 0 {
					_, _ = fmt.Fprintln(w, "No message streams found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Name", "Type", "Created", "Archived")

				for _, stream := range streams.MessageStreams {
					archived := ""
					if stream.ArchivedAt != nil {
						archived = stream.ArchivedAt.Format(timeFormat)
					}

					_ = table.Append(stream.ID, stream.Name, stream.MessageStreamType, stream.CreatedAt.Format(timeFormat), archived)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&filter.MessageStreamType, "type", "", "Transactional, Broadcasts or Inbound")
	cmd.Flags().BoolVar(&filter.IncludeArchivedStreams, "include-archived", false, "include archived streams")

	return cmd
}
