package omise

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// Object is a resource instance: an ordered set of attributes mirroring the
// last server payload, the names assigned locally since then, and the backend
// used for remote operations.
//
// Objects are compared by identity. They are not safe for concurrent use.
type Object struct {
	kind        *Kind
	attrs       map[string]Value
	order       []string
	changes     map[string]Value
	changeOrder []string
	destroyed   bool
	backend     Backend
	scope       map[string]string
	uuid        uuid.UUID
}

// FromData builds a detached object from a payload. Nested resources and list
// envelopes are materialized recursively; the change record starts empty.
func FromData(payload map[string]any) *Object {
	return hydrateObject(nil, nil, nil, payload)
}

// FromDataAs builds a detached object using kind when the payload carries no
// registered "object" discriminator.
func FromDataAs(kind *Kind, payload map[string]any) *Object {
	return hydrateObject(nil, kind, nil, payload)
}

// Kind returns the resource kind.
func (o *Object) Kind() *Kind { return o.kind }

// Get returns an attribute. Names that were never hydrated or assigned return
// ErrUnknownAttribute.
func (o *Object) Get(name string) (Value, error) {
	value, ok := o.attrs[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, o.kind.Name, name)
	}

	return value, nil
}

// Has reports whether an attribute is set, even to null.
func (o *Object) Has(name string) bool {
	_, ok := o.attrs[name]

	return ok
}

// Attributes returns the attribute names in order: hydrated names first,
// then names first assigned locally.
func (o *Object) Attributes() []string {
	return slices.Clone(o.order)
}

// GetString returns a string attribute.
func (o *Object) GetString(name string) (string, error) {
	value, err := o.Get(name)
	if err != nil {
		return "", err
	}

	s, ok := value.Str()
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, not string", ErrAttributeType, name, value.Type())
	}

	return s, nil
}

// GetInt returns an integer attribute.
func (o *Object) GetInt(name string) (int64, error) {
	value, err := o.Get(name)
	if err != nil {
		return 0, err
	}

	i, ok := value.Int()
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, not integer", ErrAttributeType, name, value.Type())
	}

	return i, nil
}

// GetBool returns a boolean attribute.
func (o *Object) GetBool(name string) (bool, error) {
	value, err := o.Get(name)
	if err != nil {
		return false, err
	}

	b, ok := value.Bool()
	if !ok {
		return false, fmt.Errorf("%w: %s is %s, not boolean", ErrAttributeType, name, value.Type())
	}

	return b, nil
}

// GetTime parses a timestamp attribute such as "created".
func (o *Object) GetTime(name string) (time.Time, error) {
	s, err := o.GetString(name)
	if err != nil {
		return time.Time{}, err
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrAttributeType, name, err)
	}

	return t, nil
}

// GetObject returns a nested resource attribute.
func (o *Object) GetObject(name string) (*Object, error) {
	value, err := o.Get(name)
	if err != nil {
		return nil, err
	}

	nested, ok := value.Object()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not object", ErrAttributeType, name, value.Type())
	}

	return nested, nil
}

// GetCollection returns a nested list attribute.
func (o *Object) GetCollection(name string) (*Collection, error) {
	value, err := o.Get(name)
	if err != nil {
		return nil, err
	}

	coll, ok := value.Collection()
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not collection", ErrAttributeType, name, value.Type())
	}

	return coll, nil
}

// ID returns the identifier, or "" before creation.
func (o *Object) ID() string {
	id, _ := o.attrs[constants.FieldID].Str()

	return id
}

// Set assigns an attribute locally and records it in the change record.
// Reassigning a name keeps its first position and the latest value.
func (o *Object) Set(name string, value any) {
	v := ValueOf(value)

	if _, ok := o.attrs[name]; !ok {
		o.order = append(o.order, name)
	}

	o.attrs[name] = v

	if _, ok := o.changes[name]; !ok {
		o.changeOrder = append(o.changeOrder, name)
	}

	o.changes[name] = v
}

// Changes returns the attributes assigned since the last hydration, in wire
// form.
func (o *Object) Changes() Params {
	params := make(Params, len(o.changes))
	for name, value := range o.changes {
		params[name] = value.Wire()
	}

	return params
}

// ChangedAttributes returns the assigned names in first-assignment order.
func (o *Object) ChangedAttributes() []string {
	return slices.Clone(o.changeOrder)
}

// IsDestroyed reports whether Destroy has succeeded on this object.
func (o *Object) IsDestroyed() bool { return o.destroyed }

// IsDeleted reports whether the last payload carried "deleted": true.
func (o *Object) IsDeleted() bool {
	deleted, _ := o.attrs[constants.FieldDeleted].Bool()

	return deleted
}

// UnknownAttributes returns attribute names the kind does not declare.
// Undeclared attributes are kept; this only reports them.
func (o *Object) UnknownAttributes() []string {
	if len(o.kind.Fields) == 0 {
		return nil
	}

	var unknown []string

	for _, name := range o.order {
		if _, ok := o.kind.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}

	return unknown
}

// Location resolves the path of this instance: the server-reported location
// when present, otherwise the kind's item path filled with the identifier.
func (o *Object) Location() (string, error) {
	path, err := o.path()
	if err != nil {
		return "", err
	}

	return path.String(), nil
}

func (o *Object) path() (Path, error) {
	if location, ok := o.attrs[constants.FieldLocation].Str(); ok && location != "" {
		return ParsePath(location), nil
	}

	path, err := o.kind.ItemLocation(o.ID(), o.scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoLocation, o, err)
	}

	return path, nil
}

// Reload fetches the object from its location and replaces every attribute.
func (o *Object) Reload(ctx context.Context) error {
	if err := o.remote(ctx, http.MethodGet, "", nil); err != nil {
		return fmt.Errorf("reloading %s: %w", o.kind.Name, err)
	}

	return nil
}

// Update sends exactly the changed attributes and replaces every attribute
// with the response. The request is sent even when nothing changed.
func (o *Object) Update(ctx context.Context) error {
	if err := o.remote(ctx, http.MethodPatch, "", o.Changes()); err != nil {
		return fmt.Errorf("updating %s: %w", o.kind.Name, err)
	}

	return nil
}

// Destroy deletes the object remotely, hydrates the deletion response and
// marks the object destroyed. Every later remote operation returns
// ErrDestroyed; local reads and writes keep working.
func (o *Object) Destroy(ctx context.Context) error {
	if err := o.remote(ctx, http.MethodDelete, "", nil); err != nil {
		return fmt.Errorf("destroying %s: %w", o.kind.Name, err)
	}

	o.destroyed = true

	return nil
}

// Perform runs a declared action such as a charge capture and replaces every
// attribute with the response.
func (o *Object) Perform(ctx context.Context, name string, params Params) error {
	action, ok := o.kind.Action(name)
	if !ok {
		return fmt.Errorf("%w: %s has no action %q", ErrUnknownAction, o.kind.Name, name)
	}

	if err := o.remote(ctx, action.Method, action.Suffix, params); err != nil {
		return fmt.Errorf("performing %s on %s: %w", name, o.kind.Name, err)
	}

	return nil
}

func (o *Object) remote(ctx context.Context, method, suffix string, params Params) error {
	if o.destroyed {
		return ErrDestroyed
	}

	if o.backend == nil {
		return ErrDetached
	}

	path, err := o.path()
	if err != nil {
		return err
	}

	if suffix != "" {
		path = path.Join(ParsePath(suffix)...)
	}

	payload, err := o.backend.Send(ctx, o.kind.instanceHost(), method, path, params)
	if err != nil {
		return err
	}

	if err := errorFromPayload(payload); err != nil {
		return err
	}

	o.load(payload)

	return nil
}

// Map returns the JSON-shaped content of the object with nested objects and
// collections expanded.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, len(o.attrs))
	for name, value := range o.attrs {
		out[name] = plain(value)
	}

	return out
}

func plain(value Value) any {
	if nested, ok := value.Object(); ok {
		return nested.Map()
	}

	if coll, ok := value.Collection(); ok {
		return coll.Map()
	}

	if raw, ok := value.Interface().(map[string]any); ok {
		return maps.Clone(raw)
	}

	return value.Interface()
}

// String renders the kind, the identifier when present and the instance
// discriminator, e.g. <Charge id='chrg_test' at 6f1c...>.
func (o *Object) String() string {
	if id := o.ID(); id != "" {
		return fmt.Sprintf("<%s id='%s' at %s>", o.kind.Name, id, o.uuid)
	}

	return fmt.Sprintf("<%s at %s>", o.kind.Name, o.uuid)
}

// InstanceID returns the per-instance discriminator shown by String.
func (o *Object) InstanceID() string { return o.uuid.String() }
