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

// NewDomainsCommand creates the domains command group
func NewDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage sending domains",
		Long:    "List sending domains and inspect their DNS verification state",
	}

	cmd.AddCommand(newDomainsListCommand())
	cmd.AddCommand(newDomainsGetCommand())

	return cmd
}

func newDomainsListCommand() *cobra.Command {
	var filter postmark.DomainFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAccountClient()
			if err != nil {
				return err
			}

			domains, err := client.Domains().List(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), domains, func(w io.Writer) error {
				if len(domains.Domains) == 0 {
					_, _ = fmt.Fprintln(w, "No domains found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Name", "SPF", "DKIM", "Weak DKIM", "Return Path")

				for _, domain := range domains.Domains {
					_ = table.Append(
						strconv.Itoa(domain.ID),
						domain.Name,
						strconv.FormatBool(domain.SPFVerified),
						strconv.FormatBool(domain.DKIMVerified),
						strconv.FormatBool(domain.WeakDKIM),
						strconv.FormatBool(domain.ReturnPathDomainVerified),
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&filter.Count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "results to skip")

	return cmd
}

func newDomainsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOMAIN_ID",
		Short: "Get domain details",
		Long:  "Display a domain with the DNS records it needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid domain ID %q: %w", args[0], err)
			}

			client, err := createAccountClient()
			if err != nil {
				return err
			}

			domain, err := client.Domains().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get domain: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), domain, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(domain.ID))
				_ = table.Append("Name", domain.Name)
				_ = table.Append("SPF Verified", strconv.FormatBool(domain.SPFVerified))
				_ = table.Append("SPF Host", domain.SPFHost)
				_ = table.Append("DKIM Verified", strconv.FormatBool(domain.DKIMVerified))
				_ = table.Append("DKIM Host", domain.DKIMHost)
				_ = table.Append("DKIM Value", truncate(domain.DKIMTextValue))
				_ = table.Append("DKIM Update", domain.DKIMUpdateStatus)
				_ = table.Append("Return Path", domain.ReturnPathDomain)
				_ = table.Append("Return Path CNAME", domain.ReturnPathDomainCNAMEValue)

				return table.Render()
			})
		},
	}
}
