package constants

import "errors"

// Configuration errors.
var (
	ErrNoSecretKeyConfigured = errors.New("no secret key configured, use 'omise config set secret_key' or OMISE_SECRET_KEY")
	ErrNoPublicKeyConfigured = errors.New("no public key configured, use 'omise config set public_key' or OMISE_PUBLIC_KEY")
	ErrUnknownConfigKey      = errors.New("unknown configuration key")
	ErrConfigValueRequired   = errors.New("a value is required for this configuration key")
)

// Validation errors.
var (
	ErrInvalidParamFormat  = errors.New("invalid parameter format, expected key=value")
	ErrEmptyParamKey       = errors.New("parameter key must not be empty")
	ErrConflictingParamKey = errors.New("parameter key used both as a value and as a group")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidDate         = errors.New("invalid date")
)

// Operation errors.
var (
	ErrCardNotFound        = errors.New("card not found on customer")
	ErrCardsNotEmbedded    = errors.New("customer payload does not embed a cards list")
	ErrUnexpectedResult    = errors.New("unexpected result type")
	ErrNothingToUpdate     = errors.New("no parameters given to update")
	ErrSecretInputRequired = errors.New("no value given and stdin is not a terminal")
)
