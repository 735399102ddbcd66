package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
	"github.com/fivetwenty-io/postmark-client/pkg/postmarkclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Postmark API tokens",
		Long: `Prompt for a server token and an account token, check them against the
API and store them in the config file. Leave a prompt empty to keep the
current value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			reader := bufio.NewReader(in)
			out := cmd.OutOrStdout()

			serverToken, err := promptSecret(in, reader, out, "Server token: ")
			if err != nil {
				return err
			}

			accountToken, err := promptSecret(in, reader, out, "Account token: ")
			if err != nil {
				return err
			}

			config := loadConfig()
			ctx := context.Background()

			if serverToken != "" {
				if !skipVerify {
					err = verifyServerToken(ctx, serverToken)
					if err != nil {
						return err
					}
				}

				config.ServerToken = serverToken
			}

			if accountToken != "" {
				if !skipVerify {
					err = verifyAccountToken(ctx, accountToken)
					if err != nil {
						return err
					}
				}

				config.AccountToken = accountToken
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(out, "OK")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store tokens without checking them against the API")

	return cmd
}

// promptSecret reads a line without echo when in is a terminal, or a plain
// line from reader otherwise.
func promptSecret(in io.Reader, reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(out, prompt)

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) { // #nosec G115
		secret, err := term.ReadPassword(int(file.Fd())) // #nosec G115

		_, _ = fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func verifyServerToken(ctx context.Context, token string) error {
	client, err := postmarkclient.NewServerClient(token, clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	server, err := client.Server().Get(ctx)
	if err != nil {
		return fmt.Errorf("server token rejected: %w", err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Server token belongs to %q (ID %d)\n", server.Name, server.ID)
	}

	return nil
}

func verifyAccountToken(ctx context.Context, token string) error {
	client, err := postmarkclient.NewAccountClient(token, clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	_, err = client.Servers().List(ctx, &postmark.ServerFilter{Pagination: postmark.Pagination{Count: 1}})
	if err != nil {
		return fmt.Errorf("account token rejected: %w", err)
	}

	return nil
}
