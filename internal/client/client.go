package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/internal/http"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// Client routes requests to the transport of the requested host. It
// implements omise.Backend.
type Client struct {
	transports map[omise.Host]*http.Client
	logger     omise.Logger
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *omise.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates the API host transport from the secret key and, when a public
// key is configured, the vault host transport. Endpoints must already be
// normalized.
func New(config *omise.Config) (*Client, error) {
	if config == nil {
		return nil, omise.ErrConfigRequired
	}

	httpOpts := createHTTPClientOptions(config)

	apiTransport, err := http.NewClient(config.APIEndpoint, config.SecretKey, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating API transport: %w", err)
	}

	client := &Client{
		transports: map[omise.Host]*http.Client{omise.HostAPI: apiTransport},
		logger:     config.Logger,
	}

	if config.PublicKey != "" {
		vaultTransport, err := http.NewClient(config.VaultEndpoint, config.PublicKey, httpOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating vault transport: %w", err)
		}

		client.transports[omise.HostVault] = vaultTransport
	}

	return client, nil
}

// Send implements omise.Backend.
func (c *Client) Send(ctx context.Context, host omise.Host, method string, path omise.Path, params omise.Params) (map[string]any, error) {
	transport, ok := c.transports[host]
	if !ok {
		if host == omise.HostVault {
			return nil, omise.ErrPublicKeyRequired
		}

		return nil, fmt.Errorf("%w: %q", omise.ErrUnknownHost, host)
	}

	payload, err := transport.Send(ctx, method, path, params)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("request failed", map[string]interface{}{
				"host":   string(host),
				"method": method,
				"path":   path.String(),
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return payload, nil
}

// Transport returns the transport of a host.
func (c *Client) Transport(host omise.Host) (*http.Client, bool) {
	transport, ok := c.transports[host]

	return transport, ok
}
