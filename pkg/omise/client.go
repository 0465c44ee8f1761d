package omise

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// Client is the entry point for resource operations. It carries no state
// besides its backend; objects it returns are bound to the same backend.
type Client struct {
	backend Backend
}

// NewClient wraps a backend. Most callers use omiseclient.New instead.
func NewClient(backend Backend) *Client {
	return &Client{backend: backend}
}

// Backend returns the backend used for every request.
func (c *Client) Backend() Backend { return c.backend }

// FromData builds an object bound to this client's backend.
func (c *Client) FromData(payload map[string]any) *Object {
	return hydrateObject(c.backend, nil, nil, payload)
}

// CollectionFromData builds a collection bound to this client's backend.
func (c *Client) CollectionFromData(payload map[string]any) *Collection {
	return hydrateCollection(c.backend, nil, nil, payload)
}

// Resources returns the class-level operations of a kind. Scope fills named
// placeholders of the kind's path templates.
func (c *Client) Resources(kind *Kind, scope map[string]string) *Resources {
	return &Resources{client: c, kind: kind, scope: maps.Clone(scope)}
}

// Account returns the singleton account handle.
func (c *Client) Account() *Resources { return c.Resources(AccountKind, nil) }

// Balance returns the singleton balance handle.
func (c *Client) Balance() *Resources { return c.Resources(BalanceKind, nil) }

// Tokens returns the token handle. Token calls go to the vault host.
func (c *Client) Tokens() *Resources { return c.Resources(TokenKind, nil) }

// Charges returns the charge handle.
func (c *Client) Charges() *Resources { return c.Resources(ChargeKind, nil) }

// Customers returns the customer handle.
func (c *Client) Customers() *Resources { return c.Resources(CustomerKind, nil) }

// Cards returns the card handle scoped to one customer.
func (c *Client) Cards(customerID string) *Resources {
	return c.Resources(CardKind, map[string]string{"customer": customerID})
}

// Transfers returns the transfer handle.
func (c *Client) Transfers() *Resources { return c.Resources(TransferKind, nil) }

// Transactions returns the transaction handle.
func (c *Client) Transactions() *Resources { return c.Resources(TransactionKind, nil) }

// Resources performs class-level operations for one kind.
type Resources struct {
	client *Client
	kind   *Kind
	scope  map[string]string
}

// Kind returns the resource kind.
func (r *Resources) Kind() *Kind { return r.kind }

// Create posts params to the kind's collection path and returns the created
// object. Kinds with a create envelope nest params under it.
func (r *Resources) Create(ctx context.Context, params Params) (*Object, error) {
	if !r.kind.Supports(OpCreate) {
		return nil, fmt.Errorf("%w: create %s", ErrOperationNotSupported, r.kind.Name)
	}

	body := params
	if r.kind.CreateEnvelope != "" {
		body = Params{r.kind.CreateEnvelope: map[string]any(params)}
	}

	path, err := r.kind.CollectionLocation(r.scope)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.kind.Name, err)
	}

	payload, err := r.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.kind.Name, err)
	}

	return r.objectFromPayload(payload)
}

// Retrieve fetches one object by identifier. Singleton kinds take "".
func (r *Resources) Retrieve(ctx context.Context, id string) (*Object, error) {
	if !r.kind.Supports(OpRetrieve) {
		return nil, fmt.Errorf("%w: retrieve %s", ErrOperationNotSupported, r.kind.Name)
	}

	path, err := r.kind.ItemLocation(id, r.scope)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s: %w", r.kind.Name, err)
	}

	payload, err := r.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s: %w", r.kind.Name, err)
	}

	return r.objectFromPayload(payload)
}

// List fetches one page of the kind's collection endpoint.
func (r *Resources) List(ctx context.Context, opts *ListOptions) (*Collection, error) {
	if !r.kind.Supports(OpList) || r.kind.Singleton {
		return nil, fmt.Errorf("%w: list %s", ErrOperationNotSupported, r.kind.Name)
	}

	params, err := opts.Params()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind.Name, err)
	}

	path, err := r.kind.CollectionLocation(r.scope)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind.Name, err)
	}

	payload, err := r.send(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind.Name, err)
	}

	coll, err := listFromPayload(r.client.backend, r.kind, r.scope, payload)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind.Name, err)
	}

	return coll, nil
}

// RetrieveAny returns a *Object when id is given (or the kind is a singleton)
// and a *Collection of the first page otherwise.
func (r *Resources) RetrieveAny(ctx context.Context, id string) (any, error) {
	if id == "" && !r.kind.Singleton {
		return r.List(ctx, nil)
	}

	return r.Retrieve(ctx, id)
}

func (r *Resources) send(ctx context.Context, method string, path Path, params Params) (map[string]any, error) {
	if r.client == nil || r.client.backend == nil {
		return nil, ErrDetached
	}

	return r.client.backend.Send(ctx, r.kind.classHost(), method, path, params)
}

func (r *Resources) objectFromPayload(payload map[string]any) (*Object, error) {
	if err := errorFromPayload(payload); err != nil {
		return nil, err
	}

	return hydrateObject(r.client.backend, r.kind, r.scope, payload), nil
}

// Sort orders accepted by list endpoints.
const (
	OrderChronological        = "chronological"
	OrderReverseChronological = "reverse_chronological"
)

// ListOptions selects a page of a list endpoint.
type ListOptions struct {
	Offset int
	Limit  int
	From   time.Time
	To     time.Time
	Order  string
}

// Validate checks paging bounds and order.
func (o *ListOptions) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Offset, validation.Min(0)),
		validation.Field(&o.Limit, validation.Min(0), validation.Max(constants.MaxPageSize)),
		validation.Field(&o.Order, validation.In(OrderChronological, OrderReverseChronological)),
	)
}

// Params returns the query parameters. Zero fields are left to server
// defaults. A nil receiver yields no parameters.
func (o *ListOptions) Params() (Params, error) {
	if o == nil {
		return nil, nil
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid list options: %w", err)
	}

	params := Params{}

	if o.Offset > 0 {
		params[constants.FieldOffset] = strconv.Itoa(o.Offset)
	}

	if o.Limit > 0 {
		params[constants.FieldLimit] = strconv.Itoa(o.Limit)
	}

	if !o.From.IsZero() {
		params[constants.FieldFrom] = o.From.UTC().Format(time.RFC3339)
	}

	if !o.To.IsZero() {
		params[constants.FieldTo] = o.To.UTC().Format(time.RFC3339)
	}

	if o.Order != "" {
		params[constants.FieldOrder] = o.Order
	}

	return params, nil
}
