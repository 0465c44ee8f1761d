package omise

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an omise.Client.
//
// # Credentials
//
// SecretKey authenticates every call made against the API host. PublicKey
// authenticates calls made against the vault host, which only serves card
// tokenization. A client built without a PublicKey works for every resource
// except Token; token calls fail with ErrPublicKeyRequired.
//
// # Timeouts and retries
//
// Per-request cancellation should be controlled via the context passed to
// each operation. Requests are attempted exactly once unless RetryMax is set;
// retries are never enabled implicitly.
type Config struct {
	// SecretKey: required. Sent as the basic-auth username to the API host.
	SecretKey string
	// PublicKey: sent as the basic-auth username to the vault host.
	PublicKey string

	// APIEndpoint: base URL of the API host. Defaults to https://api.omise.co.
	APIEndpoint string
	// VaultEndpoint: base URL of the vault host. Defaults to https://vault.omise.co.
	VaultEndpoint string
	// APIVersion: optional value for the Omise-Version header.
	APIVersion string

	// HTTPTimeout: overall timeout of a single HTTP attempt. Zero keeps the default.
	HTTPTimeout time.Duration
	// RetryMax: number of retries for connection errors and 5xx/429 responses.
	// Zero (the default) disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional hooks run around every HTTP exchange.
	Interceptors *InterceptorChain
	// HTTPClient: optional base HTTP client (custom transport, proxies, TLS).
	HTTPClient *http.Client
}

// Validate checks the configuration. A missing secret key is reported as
// ErrSecretKeyRequired; any other problem as ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.SecretKey, validation.Required),
		validation.Field(&c.RetryMax, validation.Min(0)),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryWaitMax, validation.Min(c.RetryWaitMin)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		if _, missing := fieldErrs["SecretKey"]; missing {
			return fmt.Errorf("%w: %w", ErrSecretKeyRequired, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}
