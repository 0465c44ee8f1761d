package omise

import (
	"slices"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/omise-client/internal/constants"
)

// resolveKind picks the kind for a payload: a registered "object"
// discriminator wins over the declared hint, BaseKind is the fallback.
func resolveKind(payload map[string]any, hint *Kind) *Kind {
	if object, ok := payload[constants.FieldObject].(string); ok {
		if kind, found := LookupKind(object); found {
			return kind
		}
	}

	if hint != nil {
		return hint
	}

	return BaseKind
}

func isListEnvelope(payload map[string]any) bool {
	object, _ := payload[constants.FieldObject].(string)

	return object == constants.ObjectList
}

func isResourcePayload(payload map[string]any) bool {
	object, ok := payload[constants.FieldObject].(string)
	if !ok {
		return false
	}

	_, registered := LookupKind(object)

	return registered
}

func hintFor(field Field) *Kind {
	if field.Kind == "" {
		return nil
	}

	kind, _ := LookupKind(field.Kind)

	return kind
}

func newObject(backend Backend, kind *Kind, scope map[string]string) *Object {
	return &Object{
		kind:    kind,
		attrs:   make(map[string]Value),
		changes: make(map[string]Value),
		backend: backend,
		scope:   scope,
		uuid:    uuid.New(),
	}
}

func hydrateObject(backend Backend, hint *Kind, scope map[string]string, payload map[string]any) *Object {
	obj := newObject(backend, resolveKind(payload, hint), scope)
	obj.load(payload)

	return obj
}

// load replaces every attribute with the payload's content and clears the
// change record. Attribute order is the payload's key order sorted by name.
func (o *Object) load(payload map[string]any) {
	o.kind = resolveKind(payload, o.kind)
	o.attrs = make(map[string]Value, len(payload))
	o.order = make([]string, 0, len(payload))
	o.changes = make(map[string]Value)
	o.changeOrder = nil

	names := make([]string, 0, len(payload))
	for name := range payload {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		field, _ := o.kind.Field(name)
		o.attrs[name] = hydrateValue(o.backend, field, payload[name])
		o.order = append(o.order, name)
	}
}

func hydrateValue(backend Backend, field Field, raw any) Value {
	payload, ok := raw.(map[string]any)
	if !ok {
		return ValueOf(raw)
	}

	if isListEnvelope(payload) {
		return CollectionValue(hydrateCollection(backend, hintFor(field), nil, payload))
	}

	if field.Type == FieldNested || isResourcePayload(payload) {
		return ObjectValue(hydrateObject(backend, hintFor(field), nil, payload))
	}

	return ValueOf(payload)
}

func hydrateCollection(backend Backend, hint *Kind, scope map[string]string, payload map[string]any) *Collection {
	coll := &Collection{
		kind:    hint,
		backend: backend,
		scope:   scope,
	}

	coll.Offset = intField(payload, constants.FieldOffset)
	coll.Limit = intField(payload, constants.FieldLimit)
	coll.Total = intField(payload, constants.FieldTotal)
	coll.From, _ = payload[constants.FieldFrom].(string)
	coll.To, _ = payload[constants.FieldTo].(string)
	coll.Order, _ = payload[constants.FieldOrder].(string)
	coll.Location, _ = payload[constants.FieldLocation].(string)

	if data, ok := payload[constants.FieldData].([]any); ok {
		coll.records = slices.Clone(data)
	}

	return coll
}

func intField(payload map[string]any, name string) int {
	if i, ok := ValueOf(payload[name]).Int(); ok {
		return int(i)
	}

	return 0
}
