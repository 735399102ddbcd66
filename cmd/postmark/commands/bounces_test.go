package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

func newBouncesServer(t *testing.T, total int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bounces", r.URL.Path)

		query := r.URL.Query()
		count, _ := strconv.Atoi(query.Get("count"))
		offset, _ := strconv.Atoi(query.Get("offset"))

		page := postmark.Bounces{TotalCount: total}
		for id := offset; id < offset+count && id < total; id++ {
			page.Bounces = append(page.Bounces, postmark.Bounce{ID: int64(id + 1), Type: "HardBounce", Inactive: query.Get("inactive") == "true"})
		}

		_ = json.NewEncoder(w).Encode(page)
	}))
}

func TestBouncesListCommand(t *testing.T) {
	server := newBouncesServer(t, 5)
	defer server.Close()

	setupTestConfig(t, server.URL)
	viper.Set(KeyServerToken, "server-token")

	out, err := runCommand(t, NewBouncesCommand(), "list", "--count", "2", "--inactive", "true")
	require.NoError(t, err)

	var bounces []postmark.Bounce

	require.NoError(t, json.Unmarshal([]byte(out), &bounces))
	require.Len(t, bounces, 2)
	assert.True(t, bounces[0].Inactive)

	out, err = runCommand(t, NewBouncesCommand(), "list", "--count", "2", "--all")
	require.NoError(t, err)

	bounces = nil

	require.NoError(t, json.Unmarshal([]byte(out), &bounces))
	require.Len(t, bounces, 5)
	assert.Equal(t, int64(5), bounces[4].ID)
}

func TestBouncesListTable(t *testing.T) {
	server := newBouncesServer(t, 3)
	defer server.Close()

	setupTestConfig(t, server.URL)
	viper.Set(KeyServerToken, "server-token")
	viper.Set(KeyOutput, constants.FormatTable)

	out, err := runCommand(t, NewBouncesCommand(), "list", "--count", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "HardBounce")
	assert.Contains(t, out, "Showing 2 of 3. Use --all to fetch all pages.")
}

func TestBouncesCommandErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ErrorCode":407,"Message":"Bounce not found"}`))
	}))
	defer server.Close()

	setupTestConfig(t, server.URL)
	viper.Set(KeyServerToken, "server-token")

	_, err := runCommand(t, NewBouncesCommand(), "list", "--inactive", "sometimes")
	require.ErrorIs(t, err, constants.ErrInvalidBooleanFlag)

	_, err = runCommand(t, NewBouncesCommand(), "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bounce ID")

	_, err = runCommand(t, NewBouncesCommand(), "get", "42")
	require.Error(t, err)
	assert.Equal(t, postmark.KindAPIInput, postmark.KindOf(err))
	assert.Contains(t, err.Error(), "failed to get bounce")
}
