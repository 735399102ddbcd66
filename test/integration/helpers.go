//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	ServerToken  string
	AccountToken string
	BinaryPath   string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ServerToken:  os.Getenv("POSTMARK_TEST_SERVER_TOKEN"),
		AccountToken: os.Getenv("POSTMARK_TEST_ACCOUNT_TOKEN"),
		BinaryPath:   getBinaryPath(),
		Verbose:      os.Getenv("POSTMARK_TEST_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the postmark binary
func getBinaryPath() string {
	if path := os.Getenv("POSTMARK_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../postmark",
		"./postmark",
		"../postmark",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "postmark"
}

// SkipIfNoBinary skips the test when the CLI binary is missing.
func (config *TestConfig) SkipIfNoBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("postmark binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// SkipIfNoServerToken skips the test when no server token is configured.
func (config *TestConfig) SkipIfNoServerToken(t *testing.T) {
	t.Helper()
	config.SkipIfNoBinary(t)

	if config.ServerToken == "" {
		t.Skip("POSTMARK_TEST_SERVER_TOKEN not set, skipping integration test")
	}
}

// SkipIfNoAccountToken skips the test when no account token is configured.
func (config *TestConfig) SkipIfNoAccountToken(t *testing.T) {
	t.Helper()
	config.SkipIfNoBinary(t)

	if config.AccountToken == "" {
		t.Skip("POSTMARK_TEST_ACCOUNT_TOKEN not set, skipping integration test")
	}
}

// CommandRunner runs the postmark binary against an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// ConfigFile returns the config file used by every command of this runner.
func (runner *CommandRunner) ConfigFile() string {
	return runner.configFile
}

// Run executes a postmark command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a postmark command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...) // #nosec G204
	cmd.Env = append(os.Environ(),
		"POSTMARK_SERVER_TOKEN="+runner.config.ServerToken,
		"POSTMARK_ACCOUNT_TOKEN="+runner.config.AccountToken,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}

	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil || decoded == nil {
		t.Errorf("Output is not YAML: %s", output)
	}
}
