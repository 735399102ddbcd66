package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewServersCommand creates the servers command group
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		Short:   "Manage servers",
		Long:    "List and inspect the servers of the account",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersGetCommand())
	cmd.AddCommand(newServersCurrentCommand())

	return cmd
}

func newServersListCommand() *cobra.Command {
	var (
		allPages bool
		filter   postmark.ServerFilter
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAccountClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var servers []postmark.Server

			if allPages {
				servers, err = postmark.FetchAll(ctx, filter.Count, func(ctx context.Context, page postmark.Pagination) (*postmark.Page[postmark.Server], error) {
					pageFilter := filter
					pageFilter.Pagination = page

					result, err := client.Servers().List(ctx, &pageFilter)
					if err != nil {
						return nil, err
					}

					return &postmark.Page[postmark.Server]{TotalCount: result.TotalCount, Items: result.Servers}, nil
				})
			} else {
				var result *postmark.Servers

				result, err = client.Servers().List(ctx, &filter)
				if err == nil {
					servers = result.Servers
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), servers, func(w io.Writer) error {
				if len(servers) == 0 {
					_, _ = fmt.Fprintln(w, "No servers found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Name", "Color", "Delivery", "Track Opens", "Track Links")

				for _, server := range servers {
					_ = table.Append(
						strconv.Itoa(server.ID),
						server.Name,
						server.Color,
						server.DeliveryType,
						strconv.FormatBool(server.TrackOpens),
						server.TrackLinks,
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&filter.Count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "results to skip")
	cmd.Flags().StringVar(&filter.Name, "name", "", "filter by name")

	return cmd
}

func newServersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVER_ID",
		Short: "Get server details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid server ID %q: %w", args[0], err)
			}

			client, err := createAccountClient()
			if err != nil {
				return err
			}

			server, err := client.Servers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), server, func(w io.Writer) error {
				return renderServer(w, server)
			})
		},
	}
}

func newServersCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the server the server token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			server, err := client.Server().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), server, func(w io.Writer) error {
				return renderServer(w, server)
			})
		},
	}
}

func renderServer(w io.Writer, server *postmark.Server) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.Itoa(server.ID))
	_ = table.Append("Name", server.Name)
	_ = table.Append("Color", server.Color)
	_ = table.Append("Delivery", server.DeliveryType)
	_ = table.Append("Link", server.ServerLink)
	_ = table.Append("Inbound Address", server.InboundAddress)
	_ = table.Append("SMTP API", strconv.FormatBool(server.SMTPAPIActivated))
	_ = table.Append("Track Opens", strconv.FormatBool(server.TrackOpens))
	_ = table.Append("Track Links", server.TrackLinks)

	return table.Render()
}
