package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API hosts.
const (
	// DefaultAPIEndpoint serves every resource except card tokenization.
	DefaultAPIEndpoint = "https://api.omise.co"

	// DefaultVaultEndpoint serves card tokenization only, keeping raw card
	// numbers off the primary host.
	DefaultVaultEndpoint = "https://vault.omise.co"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 60 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless a caller asks for them.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Request headers.
const (
	// HeaderUserAgent identifies the client library.
	HeaderUserAgent = "User-Agent"

	// HeaderAPIVersion pins the remote API version.
	HeaderAPIVersion = "Omise-Version"

	// HeaderAccept is the accepted response media type header.
	HeaderAccept = "Accept"

	// HeaderContentType is the request body media type header.
	HeaderContentType = "Content-Type"

	// MediaTypeJSON is the response media type.
	MediaTypeJSON = "application/json"

	// MediaTypeForm is the request body media type for write methods.
	MediaTypeForm = "application/x-www-form-urlencoded"
)

// Client identification.
const (
	// LibraryName is the name reported in the User-Agent header.
	LibraryName = "OmiseGo"

	// LibraryVersion is the version reported in the User-Agent header.
	LibraryVersion = "1.0.0"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = LibraryName + "/" + LibraryVersion
)

// Pagination limits.
const (
	// DefaultPageSize is the number of records the API returns per page
	// when no limit is given.
	DefaultPageSize = 20

	// MaxPageSize is the largest limit the API accepts.
	MaxPageSize = 100
)

// Payload field names shared by every resource.
const (
	FieldObject   = "object"
	FieldID       = "id"
	FieldLocation = "location"
	FieldDeleted  = "deleted"
	FieldData     = "data"
	FieldOffset   = "offset"
	FieldLimit    = "limit"
	FieldTotal    = "total"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldOrder    = "order"

	// ObjectList is the discriminator of a collection envelope.
	ObjectList = "list"

	// ObjectError is the discriminator of an error payload.
	ObjectError = "error"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskVisibleChars is the number of trailing characters left visible
	// when masking a key.
	MaskVisibleChars = 4

	// JSONIndentSize is the indent used for JSON and YAML output.
	JSONIndentSize = 2
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Currency exponents for amounts expressed in the smallest currency unit.
const (
	// DefaultCurrencyExponent applies to currencies with two decimal places.
	DefaultCurrencyExponent = 2

	// ZeroDecimalCurrencyExponent applies to currencies without subunits.
	ZeroDecimalCurrencyExponent = 0
)
