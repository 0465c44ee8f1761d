//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
	"github.com/fivetwenty-io/omise-client/pkg/omiseclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	SecretKey string
	PublicKey string
	Verbose   bool
}

// LoadTestConfig loads test keys from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		SecretKey: os.Getenv("OMISE_SECRET_KEY"),
		PublicKey: os.Getenv("OMISE_PUBLIC_KEY"),
		Verbose:   os.Getenv("OMISE_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test unless both test keys are set.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.SecretKey == "" || c.PublicKey == "" {
		t.Skip("OMISE_SECRET_KEY and OMISE_PUBLIC_KEY are required for integration tests")
	}
}

// NewClient builds a client against the live test hosts.
func (c *TestConfig) NewClient(t *testing.T) *omise.Client {
	t.Helper()

	client, err := omiseclient.New(&omise.Config{
		SecretKey: c.SecretKey,
		PublicKey: c.PublicKey,
		Debug:     c.Verbose,
		Logger:    testLogger{t: t},
	})
	require.NoError(t, err)

	return client
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Log(msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.t.Log(msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Log(msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.t.Log(msg, fields) }
