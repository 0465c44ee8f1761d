package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// executeCommand runs the CLI with a fresh viper state and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand("1.2.3", "abc123", "2026-10-18")

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand("dev", "none", "unknown")

	for _, name := range []string{"version", "config", "account", "balance", "tokens", "charges", "customers", "cards", "transfers", "transactions"} {
		assert.NotNil(t, findSubcommand(root, name), "missing %s", name)
	}

	assert.ElementsMatch(t, []string{"list", "get", "create", "update", "capture"}, subcommandNames(findSubcommand(root, "charges")))
	assert.ElementsMatch(t, []string{"list", "get"}, subcommandNames(findSubcommand(root, "transactions")))
	assert.ElementsMatch(t, []string{"get", "create"}, subcommandNames(findSubcommand(root, "tokens")))
	assert.ElementsMatch(t, []string{"list", "get", "update", "delete"}, subcommandNames(findSubcommand(root, "cards")))
	assert.ElementsMatch(t, []string{"list", "get", "create", "update", "delete", "cards"}, subcommandNames(findSubcommand(root, "customers")))
	assert.Empty(t, findSubcommand(root, "account").Commands())
	assert.NotNil(t, findSubcommand(root, "cards").PersistentFlags().Lookup("customer"))
}

// apiServer answers the requests the command tests make.
func apiServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, _, _ := request.BasicAuth()
		if user != "skey_test" {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(writer, `{"object": "error", "code": "authentication_failure", "message": "authentication failed"}`)

			return
		}

		route := request.Method + " " + request.URL.Path

		switch route {
		case "GET /account":
			_, _ = io.WriteString(writer, `{"object": "account", "id": "acct_test", "email": "test@omise.co", "created": "2014-10-21T04:04:12Z"}`)
		case "GET /balance":
			_, _ = io.WriteString(writer, `{"object": "balance", "livemode": false, "available": 380470, "total": 380470, "currency": "thb"}`)
		case "GET /charges/chrg_test":
			_, _ = io.WriteString(writer, `{"object": "charge", "id": "chrg_test", "location": "/charges/chrg_test", "amount": 100025, "currency": "thb", "captured": false}`)
		case "POST /charges/chrg_test/capture":
			_, _ = io.WriteString(writer, `{"object": "charge", "id": "chrg_test", "location": "/charges/chrg_test", "amount": 100025, "currency": "thb", "captured": true}`)
		case "PATCH /charges/chrg_test":
			assert.NoError(t, request.ParseForm())
			_, _ = io.WriteString(writer, `{"object": "charge", "id": "chrg_test", "location": "/charges/chrg_test", "description": "`+request.PostForm.Get("description")+`"}`)
		case "GET /transactions":
			assert.Equal(t, "5", request.URL.Query().Get("limit"))
			assert.Equal(t, "2014-10-01T00:00:00Z", request.URL.Query().Get("from"))
			_, _ = io.WriteString(writer, `{"object": "list", "offset": 0, "limit": 5, "total": 1, "data": [{"object": "transaction", "id": "trxn_test", "type": "credit", "amount": 9635024, "currency": "thb", "created": "2014-10-27T06:35:17Z"}]}`)
		case "GET /customers/cust_test":
			_, _ = io.WriteString(writer, `{"object": "customer", "id": "cust_test", "location": "/customers/cust_test", "cards": {"object": "list", "total": 1, "data": [{"object": "card", "id": "card_test", "last_digits": "4242", "brand": "Visa"}]}}`)
		case "GET /customers/cust_test/cards/card_test":
			_, _ = io.WriteString(writer, `{"object": "card", "id": "card_test", "location": "/customers/cust_test/cards/card_test", "last_digits": "4242"}`)
		case "DELETE /customers/cust_test/cards/card_test":
			_, _ = io.WriteString(writer, `{"object": "card", "id": "card_test", "livemode": false, "deleted": true}`)
		default:
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"object": "error", "code": "not_found", "message": "`+route+` was not found"}`)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)

	return decoded
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceCommands(t *testing.T) {
	server := apiServer(t)
	configFile := filepath.Join(t.TempDir(), "config.yml")
	global := []string{"--config", configFile, "--secret-key", "skey_test", "--api-endpoint", server.URL}

	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()

		return executeCommand(t, append(args, global...)...)
	}

	t.Run("account", func(t *testing.T) {
		out, err := run(t, "account", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "test@omise.co", decodeOutput(t, out)["email"])
	})

	t.Run("balance table", func(t *testing.T) {
		out, err := run(t, "balance")
		require.NoError(t, err)
		assert.Contains(t, out, "3804.70 THB")
	})

	t.Run("charge capture", func(t *testing.T) {
		out, err := run(t, "charges", "capture", "chrg_test", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, true, decodeOutput(t, out)["captured"])
	})

	t.Run("charge update sends only the given attributes", func(t *testing.T) {
		out, err := run(t, "charges", "update", "chrg_test", "--param", "description=Order-385", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "description: Order-385")
	})

	t.Run("update without parameters", func(t *testing.T) {
		_, err := run(t, "charges", "update", "chrg_test")
		require.ErrorIs(t, err, constants.ErrNothingToUpdate)
	})

	t.Run("transactions list", func(t *testing.T) {
		out, err := run(t, "transactions", "list", "--limit", "5", "--from", "2014-10-01")
		require.NoError(t, err)
		assert.Contains(t, out, "trxn_test")
		assert.Contains(t, out, "96350.24 THB")
		assert.Contains(t, out, "Showing 1-1 of 1")
	})

	t.Run("transactions list with a bad date", func(t *testing.T) {
		_, err := run(t, "transactions", "list", "--from", "someday")
		require.ErrorIs(t, err, constants.ErrInvalidDate)
	})

	t.Run("customer cards", func(t *testing.T) {
		out, err := run(t, "customers", "cards", "cust_test", "--card", "card_test", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, "4242", decodeOutput(t, out)["last_digits"])

		_, err = run(t, "customers", "cards", "cust_test", "--card", "card_missing")
		require.ErrorIs(t, err, constants.ErrCardNotFound)
	})

	t.Run("card delete", func(t *testing.T) {
		out, err := run(t, "cards", "delete", "card_test", "--customer", "cust_test", "-o", "json")
		require.NoError(t, err)
		assert.Equal(t, true, decodeOutput(t, out)["deleted"])
	})

	t.Run("not found", func(t *testing.T) {
		_, err := run(t, "transfers", "get", "trsf_missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "was not found")
	})

	t.Run("token create needs a public key", func(t *testing.T) {
		_, err := run(t, "tokens", "create", "--param", "number=4242424242424242")
		require.ErrorIs(t, err, constants.ErrNoPublicKeyConfigured)
	})

	t.Run("invalid output format", func(t *testing.T) {
		_, err := run(t, "account", "-o", "xml")
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})
}

func TestResourceCommands_NoSecretKey(t *testing.T) {
	t.Setenv("OMISE_SECRET_KEY", "")

	_, err := executeCommand(t, "balance", "--config", filepath.Join(t.TempDir(), "config.yml"))
	require.ErrorIs(t, err, constants.ErrNoSecretKeyConfigured)
}

func TestConfigCommands(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "omise", "config.yml")

	_, err := executeCommand(t, "config", "set", "secret_key", "skey_test_12345", "--config", configFile)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "set", "api_version", "2019-05-29", "--config", configFile)
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "secret_key: skey_test_12345")
	assert.Contains(t, string(data), "api_version:")
	assert.Contains(t, string(data), "2019-05-29")

	out, err := executeCommand(t, "config", "show", "--config", configFile, "-o", "json")
	require.NoError(t, err)

	shown := decodeOutput(t, out)
	assert.Equal(t, "***2345", shown["secret_key"])
	assert.Equal(t, "2019-05-29", shown["api_version"])

	_, err = executeCommand(t, "config", "unset", "api_version", "--config", configFile)
	require.NoError(t, err)

	data, err = os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "api_version")

	_, err = executeCommand(t, "config", "set", "color", "blue", "--config", configFile)
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = executeCommand(t, "config", "set", "api_endpoint", "--config", configFile)
	require.ErrorIs(t, err, constants.ErrConfigValueRequired)

	_, err = executeCommand(t, "config", "set", "output", "xml", "--config", configFile)
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version", "-o", "json")
	require.NoError(t, err)

	info := decodeOutput(t, out)
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, constants.DefaultUserAgent, info["library"])
}
