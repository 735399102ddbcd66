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

// NewTriggersCommand creates the inbound rule triggers command group
func NewTriggersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "triggers",
		Aliases: []string{"inbound-rules"},
		Short:   "Manage inbound rule triggers",
		Long:    "List, create and delete rules that block inbound mail",
	}

	cmd.AddCommand(newTriggersListCommand())
	cmd.AddCommand(newTriggersCreateCommand())
	cmd.AddCommand(newTriggersDeleteCommand())

	return cmd
}

func newTriggersListCommand() *cobra.Command {
	var filter postmark.InboundRuleFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbound rule triggers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			triggers, err := client.InboundRuleTriggers().List(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to list inbound rule triggers: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), triggers, func(w io.Writer) error {
				if len(triggers.InboundRules) == 0 {
					_, _ = fmt.Fprintln(w, "No inbound rule triggers found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Rule")

				for _, trigger := range triggers.InboundRules {
					_ = table.Append(strconv.Itoa(trigger.ID), trigger.Rule)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&filter.Count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "results to skip")

	return cmd
}

func newTriggersCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create RULE",
		Short: "Block an address or domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			trigger, err := client.InboundRuleTriggers().Create(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create inbound rule trigger: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), trigger, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Created rule %d: %s\n", trigger.ID, trigger.Rule)

				return err
			})
		},
	}
}

func newTriggersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRIGGER_ID",
		Short: "Delete an inbound rule trigger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid trigger ID %q: %w", args[0], err)
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			result, err := client.InboundRuleTriggers().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete inbound rule trigger: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result.Message)

				return err
			})
		},
	}
}
