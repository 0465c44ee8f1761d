package omise

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration errors. These are fatal and returned before any request is made.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrMissingCredential = errors.New("API key is required")
	ErrSecretKeyRequired = errors.New("secret key is required")
	ErrPublicKeyRequired = errors.New("public key is required for the vault host")
	ErrUnknownHost       = errors.New("unknown API host")
)

// Object model errors.
var (
	ErrUnknownAttribute      = errors.New("unknown attribute")
	ErrAttributeType         = errors.New("attribute has a different type")
	ErrDestroyed             = errors.New("object has been destroyed")
	ErrDetached              = errors.New("object is not bound to a client")
	ErrNoLocation            = errors.New("object has no location")
	ErrUnknownAction         = errors.New("unknown action")
	ErrOperationNotSupported = errors.New("operation not supported by this resource")
	ErrIdentifierRequired    = errors.New("identifier is required")
	ErrInvalidIdentifier     = errors.New("identifier is not a valid path segment")
)

// Collection errors.
var (
	ErrIndexOutOfRange = errors.New("collection index out of range")
	ErrIterationDone   = errors.New("no more items")
	ErrNoMorePages     = errors.New("no more pages")
	ErrNotAnObject     = errors.New("collection record is not an object")
)

// Wire errors.
var (
	ErrUnsupportedParam = errors.New("unsupported parameter value")
	ErrInvalidResponse  = errors.New("response body is not a JSON object")
)

// Common error codes reported by the API.
const (
	ErrorCodeNotFound              = "not_found"
	ErrorCodeAuthenticationFailure = "authentication_failure"
	ErrorCodeInvalidCard           = "invalid_card"
	ErrorCodeBadRequest            = "bad_request"
	ErrorCodeUsedToken             = "used_token"
	ErrorCodeFailedCapture         = "failed_capture"
)

// APIError is an error-shaped payload ({"object": "error", ...}) returned by
// the API. The transport never produces it; resource operations convert such
// payloads instead of hydrating them.
type APIError struct {
	Location   string `json:"location" yaml:"location"`
	Code       string `json:"code"     yaml:"code"`
	Message    string `json:"message"  yaml:"message"`
	StatusCode int    `json:"-"        yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "omise: " + e.Code
	}

	return fmt.Sprintf("omise: %s (code: %s)", e.Message, e.Code)
}

// errorFromPayload returns an *APIError when payload is error-shaped.
func errorFromPayload(payload map[string]any) error {
	if object, _ := payload["object"].(string); object != "error" {
		return nil
	}

	apiErr := &APIError{}
	apiErr.Location, _ = payload["location"].(string)
	apiErr.Code, _ = payload["code"].(string)
	apiErr.Message, _ = payload["message"].(string)

	switch apiErr.Code {
	case ErrorCodeNotFound:
		apiErr.StatusCode = http.StatusNotFound
	case ErrorCodeAuthenticationFailure:
		apiErr.StatusCode = http.StatusUnauthorized
	case ErrorCodeBadRequest, ErrorCodeInvalidCard, ErrorCodeUsedToken:
		apiErr.StatusCode = http.StatusBadRequest
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNotFound
	}

	return false
}

// IsAuthenticationFailure checks if the error reports a rejected API key.
func IsAuthenticationFailure(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeAuthenticationFailure
	}

	return false
}
