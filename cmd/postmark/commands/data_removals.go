package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewDataRemovalsCommand creates the data-removals command group
func NewDataRemovalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "data-removals",
		Aliases: []string{"data-removal"},
		Short:   "Request removal of recipient data",
	}

	cmd.AddCommand(newDataRemovalsRequestCommand())
	cmd.AddCommand(newDataRemovalsGetCommand())

	return cmd
}

func newDataRemovalsRequestCommand() *cobra.Command {
	var (
		request postmark.DataRemovalRequest
		wait    bool
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request removal of all data about an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAccountClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			status, err := client.DataRemovals().Request(ctx, &request)
			if err != nil {
				return fmt.Errorf("failed to request data removal: %w", err)
			}

			if wait {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Waiting for data removal %d...\n", status.ID)

				status, err = client.DataRemovals().PollUntilComplete(ctx, status.ID)
				if err != nil {
					return fmt.Errorf("data removal did not complete: %w", err)
				}
			}

			return renderDataRemovalStatus(cmd.OutOrStdout(), status)
		},
	}

	cmd.Flags().StringVar(&request.RequestedBy, "requested-by", "", "address of the person requesting the removal")
	cmd.Flags().StringVar(&request.RequestedFor, "requested-for", "", "address whose data is removed")
	cmd.Flags().BoolVar(&request.NotifyWhenCompleted, "notify", false, "email the requester when done")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait until the removal completes")

	_ = cmd.MarkFlagRequired("requested-by")
	_ = cmd.MarkFlagRequired("requested-for")

	return cmd
}

func newDataRemovalsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REMOVAL_ID",
		Short: "Show the status of a data removal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid data removal ID %q: %w", args[0], err)
			}

			client, err := createAccountClient()
			if err != nil {
				return err
			}

			status, err := client.DataRemovals().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get data removal: %w", err)
			}

			return renderDataRemovalStatus(cmd.OutOrStdout(), status)
		},
	}
}

func renderDataRemovalStatus(w io.Writer, status *postmark.DataRemovalStatus) error {
	return renderOutput(w, status, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Data removal %d: %s\n", status.ID, status.Status)

		return err
	})
}
