package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEncodeParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params omise.Params
		want   url.Values
	}{
		{
			name:   "empty",
			params: nil,
			want:   url.Values{},
		},
		{
			name:   "scalars",
			params: omise.Params{"amount": 100000, "capture": false, "rate": 2.5, "currency": "thb"},
			want: url.Values{
				"amount":   {"100000"},
				"capture":  {"false"},
				"rate":     {"2.5"},
				"currency": {"thb"},
			},
		},
		{
			name: "nested group",
			params: omise.Params{"card": map[string]any{
				"name":             "Somchai Prasert",
				"expiration_month": 10,
			}},
			want: url.Values{
				"card[name]":             {"Somchai Prasert"},
				"card[expiration_month]": {"10"},
			},
		},
		{
			name:   "nil values are omitted",
			params: omise.Params{"description": nil, "email": "john.doe@example.com"},
			want:   url.Values{"email": {"john.doe@example.com"}},
		},
		{
			name:   "slices",
			params: omise.Params{"tags": []string{"a", "b"}, "ids": []any{"x", 1}},
			want:   url.Values{"tags[]": {"a", "b"}, "ids[]": {"x", "1"}},
		},
		{
			name: "slices of groups",
			params: omise.Params{"items": []any{
				map[string]any{"sku": "A"},
				map[string]any{"sku": "B"},
			}},
			want: url.Values{"items[0][sku]": {"A"}, "items[1][sku]": {"B"}},
		},
		{
			name:   "values and objects",
			params: omise.Params{"card": omise.ObjectValue(omise.FromData(map[string]any{"object": "card", "id": "card_test"})), "description": omise.StringValue("Order-384")},
			want:   url.Values{"card": {"card_test"}, "description": {"Order-384"}},
		},
		{
			name: "collection by ids",
			params: omise.Params{"cards": omise.CollectionValue(omise.CollectionFromData(map[string]any{"object": "list", "data": []any{
				map[string]any{"object": "card", "id": "card_test_1"},
				map[string]any{"object": "card", "id": "card_test_2"},
			}}))},
			want: url.Values{"cards[]": {"card_test_1", "card_test_2"}},
		},
		{
			name:   "times",
			params: omise.Params{"from": time.Date(2014, 10, 1, 7, 0, 0, 0, time.FixedZone("ICT", 7*3600))},
			want:   url.Values{"from": {"2014-10-01T00:00:00Z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EncodeParams(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeParams_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := EncodeParams(omise.Params{"handler": func() {}})
	require.ErrorIs(t, err, omise.ErrUnsupportedParam)

	_, err = EncodeParams(omise.Params{"card": omise.FromData(map[string]any{"object": "card"})})
	require.ErrorIs(t, err, omise.ErrUnsupportedParam)
}
