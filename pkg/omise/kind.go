package omise

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
)

// FieldType tells hydration how to treat a declared field.
type FieldType int

const (
	// FieldScalar is stored as-is.
	FieldScalar FieldType = iota
	// FieldNested holds a single nested resource payload.
	FieldNested
	// FieldCollection holds a list envelope of resources.
	FieldCollection
)

// Field declares one attribute of a resource kind. Kind names the object
// discriminator of the nested resource ("card") for nested and collection
// fields.
type Field struct {
	Name string
	Type FieldType
	Kind string
}

// Scalar declares a plain attribute.
func Scalar(name string) Field { return Field{Name: name, Type: FieldScalar} }

// Nested declares an attribute holding a resource of the given kind.
func Nested(name, kind string) Field { return Field{Name: name, Type: FieldNested, Kind: kind} }

// CollectionOf declares an attribute holding a list of resources of the given kind.
func CollectionOf(name, kind string) Field {
	return Field{Name: name, Type: FieldCollection, Kind: kind}
}

// Action is an instance operation beyond reload/update/destroy, sent to the
// object's location with Suffix appended.
type Action struct {
	Method string
	Suffix string
}

// Operation is a bit set of the class-level operations a kind supports.
type Operation uint8

// Class-level operations.
const (
	OpCreate Operation = 1 << iota
	OpRetrieve
	OpList

	OpAll = OpCreate | OpRetrieve | OpList
)

// Kind is the static declaration of one resource kind: where it lives, how
// its paths are built and which of its attributes hold nested resources.
//
// Path templates use "{id}" for the identifier and "{name}" for scope
// parameters, e.g. "/customers/{customer}/cards/{id}".
type Kind struct {
	// Name is the display name used in String(), e.g. "Charge".
	Name string
	// Object is the "object" discriminator reported by the API, e.g. "charge".
	Object string
	// Host serves class-level operations (create, retrieve, list).
	Host Host
	// InstanceHost serves reload, update, destroy and actions. Defaults to Host.
	InstanceHost Host
	// ItemPath is the single-item path template.
	ItemPath string
	// CollectionPath is the create/list path template. Defaults to ItemPath
	// without its trailing "/{id}" segment.
	CollectionPath string
	// Singleton kinds have one fixed path and no identifier.
	Singleton bool
	// CreateEnvelope wraps create parameters under one group, e.g. "card".
	CreateEnvelope string
	// Fields lists the declared attributes.
	Fields []Field
	// Actions lists custom instance operations by name.
	Actions map[string]Action
	// Operations lists supported class-level operations.
	Operations Operation

	fieldIndex map[string]Field
}

// BaseKind is used for payloads whose "object" is not registered.
var BaseKind = &Kind{Name: "Object", Host: HostAPI}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Kind)
)

// Register adds a kind to the registry and returns it, so declarations read
// as `var ChargeKind = Register(&Kind{...})`. Registering an object name twice
// replaces the previous kind.
func Register(kind *Kind) *Kind {
	kind.init()

	registryMu.Lock()
	defer registryMu.Unlock()

	registry[kind.Object] = kind

	return kind
}

// LookupKind returns the kind registered for an object discriminator.
func LookupKind(object string) (*Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kind, ok := registry[object]

	return kind, ok
}

// Kinds returns all registered kinds sorted by object name.
func Kinds() []*Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]*Kind, 0, len(registry))
	for _, kind := range registry {
		kinds = append(kinds, kind)
	}

	slices.SortFunc(kinds, func(a, b *Kind) int { return strings.Compare(a.Object, b.Object) })

	return kinds
}

func (k *Kind) init() {
	if k.InstanceHost == "" {
		k.InstanceHost = k.Host
	}

	if k.CollectionPath == "" {
		k.CollectionPath = strings.TrimSuffix(k.ItemPath, "/{id}")
	}

	if k.Operations == 0 {
		k.Operations = OpAll
	}

	k.fieldIndex = make(map[string]Field, len(k.Fields))
	for _, field := range k.Fields {
		k.fieldIndex[field.Name] = field
	}
}

// Field returns the declared field with the given name.
func (k *Kind) Field(name string) (Field, bool) {
	if k.fieldIndex == nil {
		for _, field := range k.Fields {
			if field.Name == name {
				return field, true
			}
		}

		return Field{}, false
	}

	field, ok := k.fieldIndex[name]

	return field, ok
}

// Supports reports whether the kind allows a class-level operation.
func (k *Kind) Supports(op Operation) bool {
	return k.Operations&op == op
}

// Action returns a declared instance action.
func (k *Kind) Action(name string) (Action, bool) {
	action, ok := k.Actions[name]
	if ok && action.Method == "" {
		action.Method = http.MethodPost
	}

	return action, ok
}

// ItemLocation resolves the item path for id within scope. Singleton kinds
// ignore id.
func (k *Kind) ItemLocation(id string, scope map[string]string) (Path, error) {
	if k.ItemPath == "" {
		return nil, fmt.Errorf("%w: %s has no item path", ErrNoLocation, k.Name)
	}

	if k.Singleton {
		id = ""
	} else if id == "" {
		return nil, ErrIdentifierRequired
	}

	return expandTemplate(k.ItemPath, id, scope)
}

// CollectionLocation resolves the collection path within scope.
func (k *Kind) CollectionLocation(scope map[string]string) (Path, error) {
	if k.CollectionPath == "" {
		return nil, fmt.Errorf("%w: %s has no collection path", ErrNoLocation, k.Name)
	}

	return expandTemplate(k.CollectionPath, "", scope)
}

func (k *Kind) classHost() Host {
	if k.Host != "" {
		return k.Host
	}

	return HostAPI
}

func (k *Kind) instanceHost() Host {
	if k.InstanceHost != "" {
		return k.InstanceHost
	}

	if k.Host != "" {
		return k.Host
	}

	return HostAPI
}

// expandTemplate substitutes each {name} segment of template with exactly one
// path segment: id for {id}, scope[name] otherwise.
func expandTemplate(template, id string, scope map[string]string) (Path, error) {
	path := ParsePath(template)

	for i, segment := range path {
		if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
			continue
		}

		name := segment[1 : len(segment)-1]

		value := scope[name]
		if name == "id" {
			value = id
		}

		switch value {
		case "":
			if name == "id" {
				return nil, ErrIdentifierRequired
			}

			return nil, fmt.Errorf("%w: %s is not set", ErrNoLocation, name)
		case ".", "..":
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, value)
		}

		path[i] = value
	}

	return path, nil
}
