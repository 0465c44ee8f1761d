package omise_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// sentRequest is one call recorded by fakeBackend.
type sentRequest struct {
	Host   omise.Host
	Method string
	Path   string
	Params omise.Params
}

// fakeBackend records every call and replies with queued payloads.
type fakeBackend struct {
	requests  []sentRequest
	responses []map[string]any
	err       error
}

func (f *fakeBackend) Send(_ context.Context, host omise.Host, method string, path omise.Path, params omise.Params) (map[string]any, error) {
	f.requests = append(f.requests, sentRequest{Host: host, Method: method, Path: path.String(), Params: params})

	if f.err != nil {
		return nil, f.err
	}

	if len(f.responses) == 0 {
		return map[string]any{}, nil
	}

	resp := f.responses[0]
	f.responses = f.responses[1:]

	return resp, nil
}

func (f *fakeBackend) reply(t *testing.T, body string) *fakeBackend {
	t.Helper()

	f.responses = append(f.responses, payload(t, body))

	return f
}

func (f *fakeBackend) last(t *testing.T) sentRequest {
	t.Helper()
	require.NotEmpty(t, f.requests, "no request was sent")

	return f.requests[len(f.requests)-1]
}

// payload decodes JSON the way the transport does, keeping numbers as
// json.Number.
func payload(t *testing.T, body string) map[string]any {
	t.Helper()

	decoder := json.NewDecoder(bytes.NewReader([]byte(body)))
	decoder.UseNumber()

	var out map[string]any
	require.NoError(t, decoder.Decode(&out))

	return out
}

const cardJSON = `{
	"object": "card",
	"id": "card_test",
	"livemode": false,
	"location": "/customers/cust_test/cards/card_test",
	"country": "",
	"city": "Bangkok",
	"postal_code": "10320",
	"financing": "",
	"last_digits": "4242",
	"brand": "Visa",
	"expiration_month": 10,
	"expiration_year": 2016,
	"fingerprint": "098f6bcd4621d373cade4e832627b4f6",
	"name": "Somchai Prasert",
	"created": "2014-10-21T04:04:12Z"
}`

const chargeJSON = `{
	"object": "charge",
	"id": "chrg_test",
	"livemode": false,
	"location": "/charges/chrg_test",
	"amount": 100000,
	"currency": "thb",
	"description": "Order-384",
	"capture": false,
	"authorized": true,
	"captured": false,
	"transaction": null,
	"return_uri": "https://www.example.com/",
	"reference": "9qt1b3n635uv6plypp2spzkpe",
	"authorize_uri": "https://www.example.com/payments/test/authorize",
	"card": {
		"object": "card",
		"id": "card_test",
		"livemode": false,
		"country": "th",
		"city": "Bangkok",
		"postal_code": "10320",
		"financing": "credit",
		"last_digits": "4242",
		"brand": "Visa",
		"expiration_month": 10,
		"expiration_year": 2018,
		"fingerprint": "098f6bcd4621d373cade4e832627b4f6",
		"name": "Somchai Prasert",
		"created": "2014-10-20T09:41:56Z"
	},
	"customer": null,
	"ip": "127.0.0.1",
	"created": "2014-10-21T11:12:28Z"
}`

const customerJSON = `{
	"object": "customer",
	"id": "cust_test",
	"livemode": false,
	"location": "/customers/cust_test",
	"default_card": null,
	"email": "john.doe@example.com",
	"description": "John Doe (id: 30)",
	"created": "2014-10-24T08:26:46Z",
	"cards": {
		"object": "list",
		"from": "1970-01-01T07:00:00+07:00",
		"to": "2014-10-24T15:32:31+07:00",
		"offset": 0,
		"limit": 20,
		"total": 1,
		"data": [
			{
				"object": "card",
				"id": "card_test",
				"livemode": false,
				"location": "/customers/cust_test/cards/card_test",
				"last_digits": "4242",
				"brand": "Visa",
				"expiration_month": 9,
				"expiration_year": 2017,
				"name": "Test card",
				"created": "2014-10-24T08:26:07Z"
			}
		],
		"location": "/customers/cust_test/cards"
	}
}`

const tokenJSON = `{
	"object": "token",
	"id": "tokn_test",
	"livemode": false,
	"location": "/tokens/tokn_test",
	"used": false,
	"card": {
		"object": "card",
		"id": "card_test",
		"livemode": false,
		"last_digits": "4242",
		"brand": "Visa",
		"name": "Somchai Prasert",
		"created": "2014-10-20T09:41:56Z"
	},
	"created": "2014-10-20T09:41:56Z"
}`
