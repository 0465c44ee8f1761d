package omise

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// List is a typed view of a list envelope.
type List[T any] struct {
	Object   string `json:"object"   yaml:"object"`
	From     string `json:"from"     yaml:"from,omitempty"`
	To       string `json:"to"       yaml:"to,omitempty"`
	Offset   int    `json:"offset"   yaml:"offset"`
	Limit    int    `json:"limit"    yaml:"limit"`
	Total    int    `json:"total"    yaml:"total"`
	Order    string `json:"order"    yaml:"order,omitempty"`
	Location string `json:"location" yaml:"location,omitempty"`
	Data     []T    `json:"data"     yaml:"data"`
}

// Decode copies an object's attributes into a typed view such as *Charge.
// Fields are matched by their json tag. Timestamps are parsed as RFC 3339 and
// an unexpanded reference (a bare ID string) fills only the ID of a nested
// view.
func Decode(obj *Object, out any) error {
	return decodeMap(obj.Map(), out)
}

// DecodeCollection copies a collection into a typed list view such as
// *List[Charge].
func DecodeCollection(coll *Collection, out any) error {
	return decodeMap(coll.Map(), out)
}

// As decodes an object into a new typed view.
func As[T any](obj *Object) (*T, error) {
	var view T
	if err := Decode(obj, &view); err != nil {
		return nil, err
	}

	return &view, nil
}

func decodeMap(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			expandReferenceHook,
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decoding %T: %w", out, err)
	}

	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// expandReferenceHook turns an unexpanded reference into {"id": ref} when the
// target is a view struct.
func expandReferenceHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Struct || to == timeType {
		return data, nil
	}

	ref, _ := data.(string)
	if ref == "" {
		return map[string]any{}, nil
	}

	return map[string]any{"id": ref}, nil
}
