package omise

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// Collection is one page of a list endpoint. It keeps the raw records and
// materializes a fresh *Object on every access, so two reads of the same index
// return distinct instances of the same record. The record set never changes
// after construction.
type Collection struct {
	Offset   int
	Limit    int
	Total    int
	From     string
	To       string
	Order    string
	Location string

	kind    *Kind
	records []any
	backend Backend
	scope   map[string]string
}

// CollectionFromData builds a detached collection from a list envelope.
// Elements resolve their kind from their own "object" discriminator.
func CollectionFromData(payload map[string]any) *Collection {
	return hydrateCollection(nil, nil, nil, payload)
}

// Kind returns the declared element kind, or nil when elements are
// resolved only by their discriminator.
func (c *Collection) Kind() *Kind { return c.kind }

// Len returns the number of records on this page.
func (c *Collection) Len() int { return len(c.records) }

// At materializes the record at index i. Negative indices count from the end.
func (c *Collection) At(i int) (*Object, error) {
	n := len(c.records)

	idx := i
	if idx < 0 {
		idx += n
	}

	if idx < 0 || idx >= n {
		return nil, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n)
	}

	payload, ok := c.records[idx].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: index %d holds %T", ErrNotAnObject, idx, c.records[idx])
	}

	return hydrateObject(c.backend, c.kind, c.scope, payload), nil
}

// All returns a restartable sequence of materialized elements in record
// order. Records that are not objects are skipped.
func (c *Collection) All() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for i := range c.records {
			obj, err := c.At(i)
			if err != nil {
				continue
			}

			if !yield(obj) {
				return
			}
		}
	}
}

// Iterator returns an explicit cursor over the collection.
func (c *Collection) Iterator() *Iterator {
	return &Iterator{collection: c}
}

// Retrieve scans the elements in order and returns the first with the given
// identifier, or nil when none matches.
func (c *Collection) Retrieve(id string) *Object {
	for obj := range c.All() {
		if obj.ID() == id {
			return obj
		}
	}

	return nil
}

// Objects materializes every element, equivalent to consuming All once.
func (c *Collection) Objects() []*Object {
	objects := make([]*Object, 0, len(c.records))
	for obj := range c.All() {
		objects = append(objects, obj)
	}

	return objects
}

// Materialize is like Objects but reports every record that is not an
// object.
func (c *Collection) Materialize() ([]*Object, error) {
	var result *multierror.Error

	objects := make([]*Object, 0, len(c.records))

	for i := range c.records {
		obj, err := c.At(i)
		if err != nil {
			result = multierror.Append(result, err)

			continue
		}

		objects = append(objects, obj)
	}

	return objects, result.ErrorOrNil()
}

// IDs returns the identifiers of every element in order.
func (c *Collection) IDs() []string {
	ids := make([]string, 0, len(c.records))
	for obj := range c.All() {
		ids = append(ids, obj.ID())
	}

	return ids
}

// HasMore reports whether the total count exceeds this page.
func (c *Collection) HasMore() bool {
	return c.Offset+len(c.records) < c.Total
}

// NextPage fetches the page following this one with the same limit and
// window.
func (c *Collection) NextPage(ctx context.Context) (*Collection, error) {
	if !c.HasMore() {
		return nil, ErrNoMorePages
	}

	if c.backend == nil {
		return nil, ErrDetached
	}

	path := ParsePath(c.Location)
	if len(path) == 0 && c.kind != nil {
		var err error
		if path, err = c.kind.CollectionLocation(c.scope); err != nil {
			return nil, fmt.Errorf("fetching next page: %w", err)
		}
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("fetching next page: %w", ErrNoLocation)
	}

	params := Params{constants.FieldOffset: strconv.Itoa(c.Offset + len(c.records))}
	if c.Limit > 0 {
		params[constants.FieldLimit] = strconv.Itoa(c.Limit)
	}

	if c.From != "" {
		params[constants.FieldFrom] = c.From
	}

	if c.To != "" {
		params[constants.FieldTo] = c.To
	}

	if c.Order != "" {
		params[constants.FieldOrder] = c.Order
	}

	host := HostAPI
	if c.kind != nil {
		host = c.kind.classHost()
	}

	payload, err := c.backend.Send(ctx, host, http.MethodGet, path, params)
	if err != nil {
		return nil, fmt.Errorf("fetching next page: %w", err)
	}

	return listFromPayload(c.backend, c.kind, c.scope, payload)
}

// Map returns the list envelope with every record expanded.
func (c *Collection) Map() map[string]any {
	data := make([]any, 0, len(c.records))

	for i, record := range c.records {
		if obj, err := c.At(i); err == nil {
			data = append(data, obj.Map())
		} else {
			data = append(data, record)
		}
	}

	out := map[string]any{
		constants.FieldObject: constants.ObjectList,
		constants.FieldOffset: int64(c.Offset),
		constants.FieldLimit:  int64(c.Limit),
		constants.FieldTotal:  int64(c.Total),
		constants.FieldData:   data,
	}

	for name, value := range map[string]string{
		constants.FieldFrom:     c.From,
		constants.FieldTo:       c.To,
		constants.FieldOrder:    c.Order,
		constants.FieldLocation: c.Location,
	} {
		if value != "" {
			out[name] = value
		}
	}

	return out
}

func listFromPayload(backend Backend, kind *Kind, scope map[string]string, payload map[string]any) (*Collection, error) {
	if err := errorFromPayload(payload); err != nil {
		return nil, err
	}

	if !isListEnvelope(payload) {
		return nil, fmt.Errorf("%w: expected a list envelope, got object %v", ErrInvalidResponse, payload[constants.FieldObject])
	}

	return hydrateCollection(backend, kind, scope, payload), nil
}

// Iterator walks a collection one element at a time.
type Iterator struct {
	collection *Collection
	next       int
}

// Next returns the next element, or ErrIterationDone after the last one.
func (it *Iterator) Next() (*Object, error) {
	if it.next >= it.collection.Len() {
		return nil, ErrIterationDone
	}

	i := it.next
	it.next++

	return it.collection.At(i)
}

// Reset rewinds the iterator to the first element.
func (it *Iterator) Reset() { it.next = 0 }
