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

// NewBouncesCommand creates the bounces command group
func NewBouncesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bounces",
		Aliases: []string{"bounce"},
		Short:   "Manage bounces",
		Long:    "List, inspect and reactivate bounced addresses",
	}

	cmd.AddCommand(newBouncesListCommand())
	cmd.AddCommand(newBouncesGetCommand())
	cmd.AddCommand(newBouncesDumpCommand())
	cmd.AddCommand(newBouncesActivateCommand())
	cmd.AddCommand(newBouncesStatsCommand())

	return cmd
}

func newBouncesListCommand() *cobra.Command {
	var (
		allPages bool
		filter   postmark.BounceFilter
		inactive string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bounces",
		Long:  "List bounces of the server, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			filter.Inactive, err = parseBoolFlag(inactive)
			if err != nil {
				return fmt.Errorf("invalid --inactive: %w", err)
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			ctx := context.Background()

			var (
				bounces []postmark.Bounce
				total   int
			)

			if allPages {
				bounces, err = postmark.FetchAll(ctx, filter.Count, func(ctx context.Context, page postmark.Pagination) (*postmark.Page[postmark.Bounce], error) {
					pageFilter := filter
					pageFilter.Pagination = page

					result, err := client.Bounces().List(ctx, &pageFilter)
					if err != nil {
						return nil, err
					}

					return &postmark.Page[postmark.Bounce]{TotalCount: result.TotalCount, Items: result.Bounces}, nil
				})
				total = len(bounces)
			} else {
				var result *postmark.Bounces

				result, err = client.Bounces().List(ctx, &filter)
				if err == nil {
					bounces, total = result.Bounces, result.TotalCount
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list bounces: %w", err)
			}

			w := cmd.OutOrStdout()

			return renderOutput(w, bounces, func(w io.Writer) error {
				if len(bounces) == 0 {
					_, _ = fmt.Fprintln(w, "No bounces found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Type", "Email", "Bounced", "Inactive", "Description")

				for _, bounce := range bounces {
					_ = table.Append(
						strconv.FormatInt(bounce.ID, 10),
						bounce.Type,
						bounce.Email,
						bounce.BouncedAt.Format(timeFormat),
						strconv.FormatBool(bounce.Inactive),
						truncate(bounce.Description),
					)
				}

				err := table.Render()
				if err != nil {
					return err
				}

				if !allPages && total > len(bounces) {
					_, _ = fmt.Fprintf(w, "\nShowing %d of %d. Use --all to fetch all pages.\n", len(bounces), total)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&filter.Count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "results to skip")
	cmd.Flags().StringVar(&filter.Type, "type", "", "bounce type, e.g. HardBounce")
	cmd.Flags().StringVar(&inactive, "inactive", "", "only inactive (true) or active (false) addresses")
	cmd.Flags().StringVar(&filter.EmailFilter, "email", "", "filter by address")
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&filter.MessageStream, "stream", "", "filter by message stream")
	cmd.Flags().StringVar(&filter.FromDate, "from-date", "", "earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&filter.ToDate, "to-date", "", "latest date, YYYY-MM-DD")

	return cmd
}

func parseBounceID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bounce ID %q: %w", arg, err)
	}

	return id, nil
}

func newBouncesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BOUNCE_ID",
		Short: "Get bounce details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBounceID(args[0])
			if err != nil {
				return err
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			bounce, err := client.Bounces().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get bounce: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), bounce, func(w io.Writer) error {
				return renderBounce(w, bounce)
			})
		},
	}
}

func renderBounce(w io.Writer, bounce *postmark.Bounce) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.FormatInt(bounce.ID, 10))
	_ = table.Append("Type", bounce.Type)
	_ = table.Append("Email", bounce.Email)
	_ = table.Append("From", bounce.From)
	_ = table.Append("Subject", bounce.Subject)
	_ = table.Append("Bounced", bounce.BouncedAt.Format(timeFormat))
	_ = table.Append("Message ID", bounce.MessageID)
	_ = table.Append("Stream", bounce.MessageStream)
	_ = table.Append("Inactive", strconv.FormatBool(bounce.Inactive))
	_ = table.Append("Can Activate", strconv.FormatBool(bounce.CanActivate))
	_ = table.Append("Description", truncate(bounce.Description))
	_ = table.Append("Details", truncate(bounce.Details))

	return table.Render()
}

func newBouncesDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump BOUNCE_ID",
		Short: "Print the raw SMTP source of a bounce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBounceID(args[0])
			if err != nil {
				return err
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			dump, err := client.Bounces().Dump(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get bounce dump: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), dump, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, dump.Body)

				return err
			})
		},
	}
}

func newBouncesActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate BOUNCE_ID",
		Short: "Reactivate a bounced address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBounceID(args[0])
			if err != nil {
				return err
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			activation, err := client.Bounces().Activate(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to activate bounce: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), activation, func(w io.Writer) error {
				_, _ = fmt.Fprintln(w, activation.Message)

				return renderBounce(w, &activation.Bounce)
			})
		},
	}
}

func newBouncesStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show delivery statistics",
		Long:  "Show bounce counts per type and the number of inactive addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			stats, err := client.Bounces().DeliveryStatistics(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get delivery statistics: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), stats, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "Inactive addresses: %d\n\n", stats.InactiveMails)

				table := tablewriter.NewWriter(w)
				table.Header("Name", "Type", "Count")

				for _, count := range stats.Bounces {
					_ = table.Append(count.Name, count.Type, strconv.Itoa(count.Count))
				}

				return table.Render()
			})
		},
	}
}
