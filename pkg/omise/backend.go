package omise

import (
	"context"
	"net/url"
	"strings"
)

// Host names one of the two API hosts.
type Host string

const (
	// HostAPI serves account, balance, card, charge, customer, transfer and
	// transaction resources.
	HostAPI Host = "api"

	// HostVault serves card tokenization only.
	HostVault Host = "vault"
)

// Path is an ordered sequence of path segments joined with "/" under a
// host's base URL. Each segment is sent as exactly one escaped path segment,
// so an identifier containing "/" cannot add path structure.
type Path []string

// NewPath builds a Path from literal segments.
func NewPath(segments ...string) Path {
	return Path(segments)
}

// ParsePath splits a slash-separated location such as "/customers/cust_test"
// into segments. Empty segments are dropped.
func ParsePath(location string) Path {
	var path Path

	for _, part := range strings.Split(location, "/") {
		if part != "" {
			path = append(path, part)
		}
	}

	return path
}

// Join returns a copy of the path with extra segments appended.
func (p Path) Join(segments ...string) Path {
	joined := make(Path, 0, len(p)+len(segments))
	joined = append(joined, p...)

	return append(joined, segments...)
}

// String renders the path with a single leading slash and each segment
// escaped.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, segment := range p {
		parts[i] = url.PathEscape(segment)
	}

	return "/" + strings.Join(parts, "/")
}

// Params is a mapping of field name to a scalar or nested value. Nested maps
// are flattened to bracketed keys (card[name]) on the wire.
type Params map[string]any

// Backend sends one request to one of the API hosts and returns the parsed
// JSON body. Implementations do not classify HTTP status codes; an
// error-shaped body is returned like any other payload.
type Backend interface {
	Send(ctx context.Context, host Host, method string, path Path, params Params) (map[string]any, error)
}
