//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoginWorkflow stores tokens without contacting the API and reads them back.
func TestLoginWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfNoBinary(t)

	// environment tokens would shadow the stored ones
	config.ServerToken = ""
	config.AccountToken = ""
	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.RunWithInput("server-token-1234\naccount-token-5678\n", "login", "--skip-verify")
	require.NoError(t, err, "login failed: %s", stderr)

	stdout, stderr, err := runner.Run("config", "show", "--output", "json")
	require.NoError(t, err, "config show failed: %s", stderr)
	AssertJSONOutput(t, stdout)

	var shown map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, "****1234", shown["server_token"])
	assert.Equal(t, "****5678", shown["account_token"])

	_, stderr, err = runner.Run("config", "set", "output", "yaml")
	require.NoError(t, err, "config set failed: %s", stderr)

	stdout, _, err = runner.Run("version")
	require.NoError(t, err)
	AssertYAMLOutput(t, stdout)
}

// TestSendWorkflow sends through the API; use a test server token so nothing is delivered.
func TestSendWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfNoServerToken(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("send",
		"--from", "sender@example.com",
		"--to", "recipient@example.com",
		"--subject", GenerateTestName("integration"),
		"--text", "Integration test",
		"--output", "json")
	require.NoError(t, err, "send failed: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, "MessageID")

	messages := `[
		{"From": "sender@example.com", "To": "a@example.com", "TextBody": "one"},
		{"From": "sender@example.com", "To": "b@example.com", "TextBody": "two"},
		{"From": "sender@example.com", "To": "c@example.com", "TextBody": "three"}
	]`

	file := filepath.Join(t.TempDir(), "messages.json")
	require.NoError(t, os.WriteFile(file, []byte(messages), 0o600))

	stdout, stderr, err = runner.Run("send-batch", file, "--chunk-size", "2", "--output", "json")
	require.NoError(t, err, "send-batch failed: %s", stderr)

	var responses []map[string]interface{}

	require.NoError(t, json.Unmarshal([]byte(stdout), &responses))
	require.Len(t, responses, 3)
	assert.Equal(t, "a@example.com", responses[0]["To"])
	assert.Equal(t, "c@example.com", responses[2]["To"])
}

// TestServerListings runs the read-only server token commands.
func TestServerListings(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfNoServerToken(t)

	runner := NewCommandRunner(config, t)

	for _, args := range [][]string{
		{"servers", "current"},
		{"bounces", "list", "--count", "5"},
		{"bounces", "stats"},
		{"templates", "list"},
		{"streams", "list"},
		{"stats", "overview"},
		{"triggers", "list"},
		{"webhooks", "list"},
		{"suppressions", "list"},
	} {
		stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
		require.NoError(t, err, "%v failed: %s", args, stderr)
		AssertJSONOutput(t, stdout)
	}
}

// TestAccountListings runs the read-only account token commands.
func TestAccountListings(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfNoAccountToken(t)

	runner := NewCommandRunner(config, t)

	for _, args := range [][]string{
		{"servers", "list", "--all"},
		{"domains", "list"},
	} {
		stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
		require.NoError(t, err, "%v failed: %s", args, stderr)
		AssertJSONOutput(t, stdout)
	}
}

// TestInvalidToken checks that a rejected token surfaces as an error exit.
func TestInvalidToken(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfNoBinary(t)

	config.ServerToken = "00000000-0000-0000-0000-000000000000"
	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("servers", "current")
	require.Error(t, err)
	assert.Contains(t, stderr, "InvalidAPIKeyError")
}
