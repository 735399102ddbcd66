package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen
func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{
			name:        "config",
			cmd:         NewConfigCommand(),
			use:         "config",
			subcommands: []string{"show", "set", "unset"},
		},
		{
			name:        "bounces",
			cmd:         NewBouncesCommand(),
			use:         "bounces",
			subcommands: []string{"list", "get", "dump", "activate", "stats"},
		},
		{
			name:        "templates",
			cmd:         NewTemplatesCommand(),
			use:         "templates",
			subcommands: []string{"list", "get", "delete", "validate", "push"},
		},
		{
			name:        "servers",
			cmd:         NewServersCommand(),
			use:         "servers",
			subcommands: []string{"list", "get", "current"},
		},
		{
			name:        "domains",
			cmd:         NewDomainsCommand(),
			use:         "domains",
			subcommands: []string{"list", "get"},
		},
		{
			name:        "stats",
			cmd:         NewStatsCommand(),
			use:         "stats",
			subcommands: []string{"overview", "sent"},
		},
		{
			name:        "triggers",
			cmd:         NewTriggersCommand(),
			use:         "triggers",
			subcommands: []string{"list", "create", "delete"},
		},
		{
			name:        "webhooks",
			cmd:         NewWebhooksCommand(),
			use:         "webhooks",
			subcommands: []string{"list"},
		},
		{
			name:        "streams",
			cmd:         NewStreamsCommand(),
			use:         "streams",
			subcommands: []string{"list"},
		},
		{
			name:        "suppressions",
			cmd:         NewSuppressionsCommand(),
			use:         "suppressions",
			subcommands: []string{"list"},
		},
		{
			name:        "data removals",
			cmd:         NewDataRemovalsCommand(),
			use:         "data-removals",
			subcommands: []string{"request", "get"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.Len(t, tt.cmd.Commands(), len(tt.subcommands))

			for _, name := range tt.subcommands {
				sub := findSubcommand(tt.cmd, name)
				require.NotNil(t, sub, "missing subcommand %s", name)
				assert.NotNil(t, sub.RunE, "subcommand %s has no RunE", name)
			}
		})
	}
}

func TestSendCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := NewSendCommand()
	assert.Equal(t, "send", cmd.Use)

	for _, flagName := range []string{"from", "to", "cc", "bcc", "subject", "text", "html", "text-file", "html-file", "tag", "reply-to", "stream"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	tmpl := NewSendTemplateCommand()
	for _, flagName := range []string{"template-id", "template-alias", "model", "from", "to"} {
		assert.NotNil(t, tmpl.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	batch := NewSendBatchCommand()
	assert.Equal(t, "send-batch FILE", batch.Use)
	assert.Equal(t, "3", batch.Flags().Lookup("concurrency").DefValue)
	assert.Equal(t, "500", batch.Flags().Lookup("chunk-size").DefValue)
}

func TestBouncesListFlags(t *testing.T) {
	t.Parallel()

	cmd := newBouncesListCommand()

	assert.Equal(t, "false", cmd.Flags().Lookup("all").DefValue)
	assert.Equal(t, "50", cmd.Flags().Lookup("count").DefValue)

	for _, flagName := range []string{"offset", "type", "inactive", "email", "tag", "stream", "from-date", "to-date"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestVersionCommand(t *testing.T) {
	setupTestConfig(t, "")

	out, err := runCommand(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)

	assert.Contains(t, out, `"version": "1.2.3"`)
	assert.Contains(t, out, `"client_version": "Postmark.Go - 1.0.0"`)
}
