package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// Configuration keys, shared by viper, the config file and `config set`.
const (
	KeyServerToken   = "server_token"
	KeyAccountToken  = "account_token"
	KeyHost          = "host"
	KeyNoTLS         = "no_tls"
	KeyTimeout       = "timeout"
	KeyOutput        = "output"
	KeyEventsNATSURL = "events_nats_url"
	KeyEventsSubject = "events_subject"
)

const maskedTokenSuffix = 4

// Config represents the CLI configuration.
type Config struct {
	ServerToken   string `json:"server_token,omitempty"    yaml:"server_token,omitempty"`
	AccountToken  string `json:"account_token,omitempty"   yaml:"account_token,omitempty"`
	Host          string `json:"host,omitempty"            yaml:"host,omitempty"`
	NoTLS         bool   `json:"no_tls"                    yaml:"no_tls"`
	Timeout       string `json:"timeout,omitempty"         yaml:"timeout,omitempty"`
	Output        string `json:"output"                    yaml:"output"`
	EventsNATSURL string `json:"events_nats_url,omitempty" yaml:"events_nats_url,omitempty"`
	EventsSubject string `json:"events_subject,omitempty"  yaml:"events_subject,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Postmark CLI configuration including tokens and connection settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration. Tokens are masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.ServerToken = maskToken(config.ServerToken)
			config.AccountToken = maskToken(config.AccountToken)

			return renderOutput(cmd.OutOrStdout(), config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + configKeyList(),
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if key == KeyServerToken || key == KeyAccountToken {
				value = maskToken(value)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value, restoring its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "Unset", key, "")
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		ServerToken:   viper.GetString(KeyServerToken),
		AccountToken:  viper.GetString(KeyAccountToken),
		Host:          viper.GetString(KeyHost),
		NoTLS:         viper.GetBool(KeyNoTLS),
		Output:        viper.GetString(KeyOutput),
		EventsNATSURL: viper.GetString(KeyEventsNATSURL),
		EventsSubject: viper.GetString(KeyEventsSubject),
	}

	if timeout := viper.GetDuration(KeyTimeout); timeout > 0 {
		config.Timeout = timeout.String()
	}

	if config.Output == "" {
		config.Output = constants.FormatTable
	}

	return config
}

// configFilePath returns the file in use, or $HOME/.postmark/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".postmark", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// keep the running process in step with the file
	viper.Set(KeyServerToken, config.ServerToken)
	viper.Set(KeyAccountToken, config.AccountToken)
	viper.Set(KeyHost, config.Host)
	viper.Set(KeyNoTLS, config.NoTLS)
	viper.Set(KeyTimeout, config.Timeout)
	viper.Set(KeyOutput, config.Output)
	viper.Set(KeyEventsNATSURL, config.EventsNATSURL)
	viper.Set(KeyEventsSubject, config.EventsSubject)

	return nil
}

// getConfigHandler returns the setter for a config key.
func getConfigHandler(key string) (func(*Config, string) error, bool) {
	handlers := map[string]func(*Config, string) error{
		KeyServerToken:  func(c *Config, v string) error { c.ServerToken = v; return nil },
		KeyAccountToken: func(c *Config, v string) error { c.AccountToken = v; return nil },
		KeyHost:         func(c *Config, v string) error { c.Host = v; return nil },
		KeyNoTLS: func(c *Config, v string) error {
			parsed, err := parseBoolValue(v)
			if err != nil {
				return err
			}

			c.NoTLS = parsed

			return nil
		},
		KeyTimeout: func(c *Config, v string) error {
			timeout, err := time.ParseDuration(v)
			if err != nil || timeout <= 0 {
				return fmt.Errorf("%w: %s", constants.ErrTimeoutInvalid, v)
			}

			c.Timeout = timeout.String()

			return nil
		},
		KeyOutput: func(c *Config, v string) error {
			err := validateOutputFormat(v)
			if err != nil {
				return err
			}

			c.Output = v

			return nil
		},
		KeyEventsNATSURL: func(c *Config, v string) error { c.EventsNATSURL = v; return nil },
		KeyEventsSubject: func(c *Config, v string) error { c.EventsSubject = v; return nil },
	}
	handler, exists := handlers[key]

	return handler, exists
}

func setConfigValue(config *Config, key, value string) error {
	handler, exists := getConfigHandler(key)
	if !exists {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return handler(config, value)
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case KeyServerToken:
		config.ServerToken = ""
	case KeyAccountToken:
		config.AccountToken = ""
	case KeyHost:
		config.Host = postmark.DefaultRequestHost
	case KeyNoTLS:
		config.NoTLS = false
	case KeyTimeout:
		config.Timeout = postmark.DefaultTimeout.String()
	case KeyOutput:
		config.Output = constants.FormatTable
	case KeyEventsNATSURL:
		config.EventsNATSURL = ""
	case KeyEventsSubject:
		config.EventsSubject = postmark.DefaultEventSubject
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func configKeyList() string {
	keys := []string{
		KeyServerToken, KeyAccountToken, KeyHost, KeyNoTLS,
		KeyTimeout, KeyOutput, KeyEventsNATSURL, KeyEventsSubject,
	}
	sort.Strings(keys)

	return strings.Join(keys, ", ")
}

// parseBoolValue parses a boolean value from string.
func parseBoolValue(value string) (bool, error) {
	switch value {
	case constants.BooleanTrue, "1":
		return true, nil
	case constants.BooleanFalse, "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", constants.ErrInvalidBooleanFlag, value)
	}
}

// maskToken keeps the last few characters of a token.
func maskToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) <= maskedTokenSuffix {
		return "****"
	}

	return "****" + token[len(token)-maskedTokenSuffix:]
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Server Token", formatConfigValue(config.ServerToken)})
	_ = table.Append([]string{"Account Token", formatConfigValue(config.AccountToken)})
	_ = table.Append([]string{"Host", formatConfigValue(config.Host)})
	_ = table.Append([]string{"No TLS", strconv.FormatBool(config.NoTLS)})
	_ = table.Append([]string{"Timeout", formatConfigValue(config.Timeout)})
	_ = table.Append([]string{"Output", config.Output})
	_ = table.Append([]string{"Events NATS URL", formatConfigValue(config.EventsNATSURL)})
	_ = table.Append([]string{"Events Subject", formatConfigValue(config.EventsSubject)})

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func formatConfigValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	return value
}

func outputConfigUpdateResult(w io.Writer, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	if value != "" {
		result["value"] = value
	}

	return renderOutput(w, result, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")

		_ = table.Append([]string{"Action", action})
		_ = table.Append([]string{"Key", key})

		if value != "" {
			_ = table.Append([]string{"Value", value})
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render update results table: %w", err)
		}

		return nil
	})
}
