package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// EncodeParams flattens params into form values. Nested maps become bracketed
// keys (card[name]), slices of scalars become key[] and slices of maps become
// key[i][child]. Nil values are omitted. Objects are sent by their ID and
// collections as key[] holding the IDs of their objects.
func EncodeParams(params omise.Params) (url.Values, error) {
	values := url.Values{}

	if err := encodeMap(values, "", params); err != nil {
		return nil, err
	}

	return values, nil
}

func encodeMap(values url.Values, prefix string, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}

		if err := encodeValue(values, name, m[key]); err != nil {
			return err
		}
	}

	return nil
}

//nolint:cyclop // one case per supported Go type
func encodeValue(values url.Values, key string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case omise.Value:
		return encodeValue(values, key, v.Wire())
	case *omise.Object:
		if v == nil {
			return nil
		}

		if v.ID() == "" {
			return fmt.Errorf("%w: %s is an object without id", omise.ErrUnsupportedParam, key)
		}

		values.Add(key, v.ID())
	case *omise.Collection:
		if v == nil {
			return nil
		}

		for _, id := range v.IDs() {
			values.Add(key+"[]", id)
		}
	case string:
		values.Add(key, v)
	case bool:
		values.Add(key, strconv.FormatBool(v))
	case int:
		values.Add(key, strconv.Itoa(v))
	case int8, int16, int32, int64:
		values.Add(key, fmt.Sprintf("%d", v))
	case uint, uint8, uint16, uint32, uint64:
		values.Add(key, fmt.Sprintf("%d", v))
	case float32:
		values.Add(key, strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		values.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
	case json.Number:
		values.Add(key, v.String())
	case time.Time:
		values.Add(key, v.UTC().Format(time.RFC3339))
	case omise.Params:
		return encodeMap(values, key, v)
	case map[string]any:
		return encodeMap(values, key, v)
	case map[string]string:
		for name, item := range v {
			values.Add(key+"["+name+"]", item)
		}
	case []string:
		for _, item := range v {
			values.Add(key+"[]", item)
		}
	case []any:
		return encodeSlice(values, key, v)
	case []map[string]any:
		for i, item := range v {
			if err := encodeMap(values, key+"["+strconv.Itoa(i)+"]", item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s has type %T", omise.ErrUnsupportedParam, key, value)
	}

	return nil
}

func encodeSlice(values url.Values, key string, items []any) error {
	for i, item := range items {
		var err error

		switch m := item.(type) {
		case map[string]any:
			err = encodeMap(values, key+"["+strconv.Itoa(i)+"]", m)
		case omise.Params:
			err = encodeMap(values, key+"["+strconv.Itoa(i)+"]", m)
		default:
			err = encodeValue(values, key+"[]", item)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
