// Package omiseclient provides the main entry point for creating Omise API clients
package omiseclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/omise-client/internal/client"
	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// New validates config, builds the API and vault transports and returns a
// client bound to them. The config is not modified.
func New(config *omise.Config) (*omise.Client, error) {
	if config == nil {
		return nil, omise.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint, constants.DefaultAPIEndpoint)
	normalized.VaultEndpoint = normalizeEndpoint(config.VaultEndpoint, constants.DefaultVaultEndpoint)

	backend, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return omise.NewClient(backend), nil
}

// NewWithKeys creates a client for the default hosts.
func NewWithKeys(secretKey, publicKey string) (*omise.Client, error) {
	return New(&omise.Config{
		SecretKey: secretKey,
		PublicKey: publicKey,
	})
}

func normalizeEndpoint(endpoint, fallback string) string {
	if endpoint == "" {
		return fallback
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
