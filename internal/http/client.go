// Package http is the transport used by the Omise client: one handle per
// credential and host, form-encoded request bodies and JSON response bodies.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single HTTP exchange. Form is sent as the body of write
// methods; GET requests carry their parameters in Query.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Form    url.Values
	Headers map[string]string
}

// Response is the raw result of a request. Non-2xx statuses are not errors at
// this level.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client sends authenticated requests to one API host.
type Client struct {
	baseURL      string
	key          string
	httpClient   *retryablehttp.Client
	baseClient   *http.Client
	timeout      time.Duration
	logger       Logger
	debug        bool
	userAgent    string
	apiVersion   string
	interceptors *omise.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion pins the remote API version with the Omise-Version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithTimeout sets the timeout of a single attempt. Without it the default
// applies unless a custom HTTP client is given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig enables retries on connection errors, 429 and 5xx
// responses. Without it every request is attempted once.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient sets the underlying HTTP client, e.g. for a custom transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.baseClient = client
	}
}

// WithInterceptors runs the chain around every exchange.
func WithInterceptors(chain *omise.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL authenticated with key as the
// basic-auth username. An empty key is a configuration error.
func NewClient(baseURL, key string, opts ...Option) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("%w for %s", omise.ErrMissingCredential, baseURL)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		key:        key,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.baseClient != nil {
		base := *client.baseClient
		retryClient.HTTPClient = &base
	} else if client.timeout == 0 {
		client.timeout = constants.DefaultHTTPTimeout
	}

	if client.timeout > 0 {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	return client, nil
}

// BaseURL returns the host URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Send performs one request and decodes the JSON object in the response body.
// GET parameters travel in the query string; other methods send them as a
// form body, empty when there are none. The status code is not inspected.
func (c *Client) Send(ctx context.Context, method string, path omise.Path, params omise.Params) (map[string]any, error) {
	values, err := EncodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("encoding parameters: %w", err)
	}

	req := &Request{
		Method: method,
		Path:   path.String(),
	}

	if method == http.MethodGet {
		req.Query = values
	} else {
		req.Form = values
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	return decodeBody(resp)
}

// Do performs a request and returns the raw response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		body    []byte
		reqBody interface{}
	)

	if req.Method != http.MethodGet {
		body = []byte(req.Form.Encode())
		if len(body) > 0 {
			reqBody = body
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.SetBasicAuth(c.key, "")
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)
	httpReq.Header.Set(constants.HeaderAccept, constants.MediaTypeJSON)

	if body != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.MediaTypeForm)
	}

	if c.apiVersion != "" {
		httpReq.Header.Set(constants.HeaderAPIVersion, c.apiVersion)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	intercepted := &omise.Request{
		Method:  req.Method,
		Host:    c.baseURL,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted); err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	resp, err := c.execute(httpReq)

	interceptedResp := &omise.Response{Error: err}
	if resp != nil {
		interceptedResp.StatusCode = resp.StatusCode
		interceptedResp.Headers = resp.Headers
		interceptedResp.Body = resp.Body
	}

	if interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp); interceptErr != nil && err == nil {
		err = interceptErr
	}

	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(resp.Body),
		})
	}

	return resp, nil
}

func (c *Client) execute(httpReq *retryablehttp.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func decodeBody(resp *Response) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(resp.Body))
	decoder.UseNumber()

	var payload map[string]any

	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w (status %d): %w", omise.ErrInvalidResponse, resp.StatusCode, err)
	}

	if payload == nil {
		return nil, fmt.Errorf("%w (status %d): null body", omise.ErrInvalidResponse, resp.StatusCode)
	}

	return payload, nil
}
