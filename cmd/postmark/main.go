package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/postmark-client/cmd/postmark/commands"
	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "postmark",
	Short: "Postmark API CLI",
	Long: `A command-line interface for the Postmark transactional email API.

This CLI sends messages and manages bounces, templates, statistics, inbound
rules, webhooks, message streams and suppressions with a server token, and
servers and domains with an account token.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.postmark/config.yml)")
	rootCmd.PersistentFlags().String("server-token", "", "server API token")
	rootCmd.PersistentFlags().String("account-token", "", "account API token")
	rootCmd.PersistentFlags().String("host", postmark.DefaultRequestHost, "API host")
	rootCmd.PersistentFlags().Bool("no-tls", false, "use http instead of https")
	rootCmd.PersistentFlags().Duration("timeout", postmark.DefaultTimeout, "per-request timeout")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("events-nats-url", "", "publish send events to this NATS server")
	rootCmd.PersistentFlags().String("events-subject", postmark.DefaultEventSubject, "NATS subject for send events")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(commands.KeyServerToken, rootCmd.PersistentFlags().Lookup("server-token"))
	_ = viper.BindPFlag(commands.KeyAccountToken, rootCmd.PersistentFlags().Lookup("account-token"))
	_ = viper.BindPFlag(commands.KeyHost, rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag(commands.KeyNoTLS, rootCmd.PersistentFlags().Lookup("no-tls"))
	_ = viper.BindPFlag(commands.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag(commands.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(commands.KeyEventsNATSURL, rootCmd.PersistentFlags().Lookup("events-nats-url"))
	_ = viper.BindPFlag(commands.KeyEventsSubject, rootCmd.PersistentFlags().Lookup("events-subject"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewSendCommand())
	rootCmd.AddCommand(commands.NewSendTemplateCommand())
	rootCmd.AddCommand(commands.NewSendBatchCommand())
	rootCmd.AddCommand(commands.NewBouncesCommand())
	rootCmd.AddCommand(commands.NewTemplatesCommand())
	rootCmd.AddCommand(commands.NewServersCommand())
	rootCmd.AddCommand(commands.NewDomainsCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewTriggersCommand())
	rootCmd.AddCommand(commands.NewWebhooksCommand())
	rootCmd.AddCommand(commands.NewStreamsCommand())
	rootCmd.AddCommand(commands.NewSuppressionsCommand())
	rootCmd.AddCommand(commands.NewDataRemovalsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.postmark/config.yml
		viper.AddConfigPath(filepath.Join(home, ".postmark"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN, ...
	viper.SetEnvPrefix("POSTMARK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
