package commands

import (
	"bytes"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
)

// setupTestConfig points viper at a temporary config file and, when
// serverURL is set, at a plain-HTTP test server. Output defaults to JSON.
func setupTestConfig(t *testing.T, serverURL string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set(KeyOutput, constants.FormatJSON)

	if serverURL != "" {
		parsed, err := url.Parse(serverURL)
		require.NoError(t, err)

		viper.Set(KeyHost, parsed.Host)
		viper.Set(KeyNoTLS, true)
	}

	return configFile
}

// runCommand executes cmd with args and returns what it wrote to stdout.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return out.String(), err
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
