package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

func TestLoginSkipVerify(t *testing.T) {
	configFile := setupTestConfig(t, "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("server-token\naccount-token\n"))

	out, err := runCommand(t, cmd, "--skip-verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Server token: ")
	assert.Contains(t, out, "OK")

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "server-token", saved.ServerToken)
	assert.Equal(t, "account-token", saved.AccountToken)
	assert.Equal(t, "account-token", viper.GetString(KeyAccountToken))
}

func TestLoginKeepsExistingTokens(t *testing.T) {
	configFile := setupTestConfig(t, "")
	viper.Set(KeyServerToken, "old-server")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("\nnew-account\n"))

	_, err := runCommand(t, cmd, "--skip-verify")
	require.NoError(t, err)

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "old-server", saved.ServerToken)
	assert.Equal(t, "new-account", saved.AccountToken)
}

func TestLoginVerifiesTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/server":
			if r.Header.Get(postmark.ServerTokenHeader) != "good-server" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"ErrorCode":10,"Message":"Bad or missing API token"}`))

				return
			}

			_ = json.NewEncoder(w).Encode(postmark.Server{ID: 1, Name: "main"})
		case "/servers":
			assert.Equal(t, "1", r.URL.Query().Get("count"))
			_ = json.NewEncoder(w).Encode(postmark.Servers{TotalCount: 1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	configFile := setupTestConfig(t, server.URL)

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("good-server\nany-account\n"))

	_, err := runCommand(t, cmd)
	require.NoError(t, err)

	saved := readConfigFile(t, configFile)
	assert.Equal(t, "good-server", saved.ServerToken)
	assert.Equal(t, "any-account", saved.AccountToken)

	cmd = NewLoginCommand()
	cmd.SetIn(strings.NewReader("bad-server\n\n"))

	_, err = runCommand(t, cmd)
	require.Error(t, err)
	assert.True(t, postmark.IsInvalidAPIKey(err))
	assert.Contains(t, err.Error(), "server token rejected")
}
