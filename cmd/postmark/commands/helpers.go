package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
	"github.com/fivetwenty-io/postmark-client/pkg/postmarkclient"
)

const timeFormat = "2006-01-02 15:04:05"

// closeFunc releases resources held by a CLI client.
type closeFunc func()

// validateOutputFormat checks a value given to --output or `config set output`.
func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, format)
	}
}

// renderOutput writes data as JSON or YAML, or calls renderTable for the
// table format.
func renderOutput(w io.Writer, data interface{}, renderTable func(io.Writer) error) error {
	output := viper.GetString(KeyOutput)

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding data to JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding data to YAML: %w", err)
		}

		return nil
	case constants.FormatTable, "":
		return renderTable(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, output)
	}
}

// clientOptions builds library options from flags, environment and config.
func clientOptions() []postmark.Option {
	opts := []postmark.Option{
		postmark.WithTLS(!viper.GetBool(KeyNoTLS)),
		postmark.WithRequestHost(viper.GetString(KeyHost)),
		postmark.WithTimeout(viper.GetDuration(KeyTimeout)),
	}

	if viper.GetBool("verbose") {
		opts = append(opts, postmark.WithLogger(NewStderrLogger(os.Stderr)), postmark.WithDebug(true))
	}

	return opts
}

// createServerClient creates a server client from the configured token. When
// an events NATS URL is configured, accepted messages are published there and
// the returned closeFunc drains the connection.
func createServerClient() (postmark.ServerClient, closeFunc, error) {
	token := viper.GetString(KeyServerToken)
	if token == "" {
		return nil, nil, constants.ErrNoServerToken
	}

	natsURL := viper.GetString(KeyEventsNATSURL)
	if natsURL == "" {
		client, err := postmarkclient.NewServerClient(token, clientOptions()...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create client: %w", err)
		}

		return client, func() {}, nil
	}

	client, events, err := postmarkclient.NewServerClientWithEvents(token, natsURL, viper.GetString(KeyEventsSubject), clientOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, func() {
		err := events.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}, nil
}

// createAccountClient creates an account client from the configured token.
func createAccountClient() (postmark.AccountClient, error) {
	token := viper.GetString(KeyAccountToken)
	if token == "" {
		return nil, constants.ErrNoAccountToken
	}

	client, err := postmarkclient.NewAccountClient(token, clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// truncate shortens s to the display limit.
func truncate(s string) string {
	if len(s) <= constants.StringTruncationLength {
		return s
	}

	return s[:constants.StringTruncationLength-3] + "..."
}

// parseBoolFlag parses an optional true/false flag; empty means unset.
func parseBoolFlag(value string) (*bool, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := parseBoolValue(value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// validateFilePath validates that a file path is safe to read.
func validateFilePath(filePath string) error {
	cleanPath := filepath.Clean(filePath)

	if filepath.IsAbs(filePath) {
		if cleanPath != filePath {
			return constants.ErrDirectoryTraversalDetected
		}
	} else if strings.HasPrefix(cleanPath, "..") {
		return constants.ErrDirectoryTraversalDetected
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", constants.ErrNotRegularFile, filePath)
	}

	return nil
}

// readBodyFile reads a message body from a validated path.
func readBodyFile(filePath string) (string, error) {
	err := validateFilePath(filePath)
	if err != nil {
		return "", err
	}

	// #nosec G304 -- path validated above
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return string(data), nil
}

// StderrLogger implements postmark.Logger on a writer, one line per entry.
type StderrLogger struct {
	w io.Writer
}

// NewStderrLogger creates a logger writing to w.
func NewStderrLogger(w io.Writer) *StderrLogger {
	return &StderrLogger{w: w}
}

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	builder.WriteString("[" + level + "] " + msg)

	for _, key := range keys {
		fmt.Fprintf(&builder, " %s=%v", key, fields[key])
	}

	fmt.Fprintln(l.w, builder.String())
}

// Debug implements postmark.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// Info implements postmark.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn implements postmark.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error implements postmark.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
