package commands

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
	"github.com/fivetwenty-io/omise-client/pkg/omiseclient"
)

// buildClientConfig reads keys and endpoints from flags, environment and the
// config file, in that order of precedence.
func buildClientConfig() (*omise.Config, error) {
	secretKey := viper.GetString(keySecretKey)
	if secretKey == "" {
		return nil, constants.ErrNoSecretKeyConfigured
	}

	verbose := viper.GetBool("verbose")

	return &omise.Config{
		SecretKey:     secretKey,
		PublicKey:     viper.GetString(keyPublicKey),
		APIEndpoint:   viper.GetString(keyAPIEndpoint),
		VaultEndpoint: viper.GetString(keyVaultEndpoint),
		APIVersion:    viper.GetString(keyAPIVersion),
		Debug:         verbose,
		Logger:        newLogger(os.Stderr, verbose),
		HTTPTimeout:   viper.GetDuration("timeout"),
		RetryMax:      viper.GetInt("retries"),
	}, nil
}

// createClient builds an API client from the current configuration.
func createClient() (*omise.Client, error) {
	config, err := buildClientConfig()
	if err != nil {
		return nil, err
	}

	client, err := omiseclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// requirePublicKey fails early for commands that talk to the vault host.
func requirePublicKey() error {
	if viper.GetString(keyPublicKey) == "" {
		return constants.ErrNoPublicKeyConfigured
	}

	return nil
}
