package omise

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// ValueType tags the variant held by a Value.
type ValueType int

// Value variants.
const (
	TypeNull ValueType = iota
	TypeString
	TypeInteger
	TypeNumber
	TypeBool
	TypeObject
	TypeCollection
	TypeRaw
)

var valueTypeNames = map[ValueType]string{
	TypeNull:       "null",
	TypeString:     "string",
	TypeInteger:    "integer",
	TypeNumber:     "number",
	TypeBool:       "boolean",
	TypeObject:     "object",
	TypeCollection: "collection",
	TypeRaw:        "raw",
}

// String returns the variant name.
func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is an attribute value: null, string, integer, number, boolean, a
// nested Object, a Collection, or raw JSON (a map or slice that does not
// match a resource shape). The zero Value is null.
type Value struct {
	typ ValueType
	v   any
}

// NullValue returns the null Value.
func NullValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{typ: TypeString, v: s} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{typ: TypeInteger, v: i} }

// NumberValue wraps a non-integral number.
func NumberValue(f float64) Value { return Value{typ: TypeNumber, v: f} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{typ: TypeBool, v: b} }

// ObjectValue wraps a nested object. A nil object is null.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Value{}
	}

	return Value{typ: TypeObject, v: o}
}

// CollectionValue wraps a collection. A nil collection is null.
func CollectionValue(c *Collection) Value {
	if c == nil {
		return Value{}
	}

	return Value{typ: TypeCollection, v: c}
}

// ValueOf converts a Go value into a Value. Integers of every width become
// TypeInteger, json.Number is split into integer or number, maps and slices
// are kept as raw JSON. Values of other types are kept as raw and rejected
// later if they have to be sent.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return StringValue(t)
	case bool:
		return BoolValue(t)
	case int:
		return IntValue(int64(t))
	case int8:
		return IntValue(int64(t))
	case int16:
		return IntValue(int64(t))
	case int32:
		return IntValue(int64(t))
	case int64:
		return IntValue(t)
	case uint8:
		return IntValue(int64(t))
	case uint16:
		return IntValue(int64(t))
	case uint32:
		return IntValue(int64(t))
	case uint:
		if uint64(t) <= math.MaxInt64 {
			return IntValue(int64(t))
		}

		return NumberValue(float64(t))
	case uint64:
		if t <= math.MaxInt64 {
			return IntValue(int64(t))
		}

		return NumberValue(float64(t))
	case float32:
		return NumberValue(float64(t))
	case float64:
		return NumberValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i)
		}

		f, _ := t.Float64()

		return NumberValue(f)
	case *Object:
		return ObjectValue(t)
	case *Collection:
		return CollectionValue(t)
	case Params:
		return Value{typ: TypeRaw, v: normalizeRaw(map[string]any(t))}
	case map[string]any, []any:
		return Value{typ: TypeRaw, v: normalizeRaw(t)}
	default:
		return Value{typ: TypeRaw, v: x}
	}
}

// Type returns the variant tag.
func (v Value) Type() ValueType { return v.typ }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.typ == TypeNull }

// Str returns the string variant.
func (v Value) Str() (string, bool) {
	s, ok := v.v.(string)

	return s, ok && v.typ == TypeString
}

// Int returns the integer variant.
func (v Value) Int() (int64, bool) {
	i, ok := v.v.(int64)

	return i, ok && v.typ == TypeInteger
}

// Float returns the number variant. Integers are widened.
func (v Value) Float() (float64, bool) {
	switch t := v.v.(type) {
	case float64:
		return t, v.typ == TypeNumber
	case int64:
		return float64(t), v.typ == TypeInteger
	}

	return 0, false
}

// Bool returns the boolean variant.
func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)

	return b, ok && v.typ == TypeBool
}

// Object returns the nested object variant.
func (v Value) Object() (*Object, bool) {
	o, ok := v.v.(*Object)

	return o, ok && v.typ == TypeObject
}

// Collection returns the collection variant.
func (v Value) Collection() (*Collection, bool) {
	c, ok := v.v.(*Collection)

	return c, ok && v.typ == TypeCollection
}

// Interface returns the held value: nil, string, int64, float64, bool,
// *Object, *Collection or raw JSON.
func (v Value) Interface() any { return v.v }

// Wire returns the representation used in request parameters. A nested
// object is sent by its id and a collection by the ids of its objects.
func (v Value) Wire() any {
	if o, ok := v.Object(); ok {
		if id := o.ID(); id != "" {
			return id
		}

		return nil
	}

	if c, ok := v.Collection(); ok {
		return c.IDs()
	}

	return v.v
}

// Equal reports whether two values hold the same variant and content.
// Nested objects and collections compare by identity.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}

	switch v.typ {
	case TypeObject, TypeCollection:
		return v.v == other.v
	case TypeRaw:
		return reflect.DeepEqual(v.v, other.v)
	default:
		return v.v == other.v
	}
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.typ {
	case TypeNull:
		return "null"
	case TypeString:
		return fmt.Sprintf("%q", v.v)
	default:
		return fmt.Sprint(v.v)
	}
}

// normalizeRaw converts json.Number leaves of raw JSON into int64 or float64.
func normalizeRaw(x any) any {
	switch t := x.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeRaw(item)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeRaw(item)
		}

		return out
	case json.Number:
		return ValueOf(t).Interface()
	default:
		return x
	}
}
