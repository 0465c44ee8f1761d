package omise_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

var widgetKind = omise.Register(&omise.Kind{
	Name:     "Widget",
	Object:   "widget",
	Host:     omise.HostAPI,
	ItemPath: "/widgets/{id}",
	Fields:   []omise.Field{omise.Scalar("id"), omise.Nested("part", "card")},
})

func TestResources_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("fills the item path", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{"object": "widget", "id": "acct_test"}`)
		client := omise.NewClient(backend)

		widget, err := client.Resources(widgetKind, nil).Retrieve(context.Background(), "acct_test")
		require.NoError(t, err)
		assert.Equal(t, "acct_test", widget.ID())
		assert.Same(t, widgetKind, widget.Kind())
		assert.Equal(t, sentRequest{Host: omise.HostAPI, Method: http.MethodGet, Path: "/widgets/acct_test"}, backend.last(t))
	})

	t.Run("singleton", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{
			"object": "account",
			"id": "acct_test",
			"email": "test@omise.co",
			"created": "2014-10-21T04:04:12Z"
		}`)

		account, err := omise.NewClient(backend).Account().Retrieve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "/account", backend.last(t).Path)

		view, err := omise.As[omise.Account](account)
		require.NoError(t, err)
		assert.Equal(t, "test@omise.co", view.Email)
		assert.Equal(t, 2014, view.Created.Year())
	})

	t.Run("identifier required", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		_, err := omise.NewClient(backend).Charges().Retrieve(context.Background(), "")
		require.ErrorIs(t, err, omise.ErrIdentifierRequired)
		assert.Empty(t, backend.requests)
	})

	t.Run("scoped card", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{"object": "card", "id": "card_test"}`)
		client := omise.NewClient(backend)

		card, err := client.Cards("cust_test").Retrieve(context.Background(), "card_test")
		require.NoError(t, err)
		assert.Equal(t, "/customers/cust_test/cards/card_test", backend.last(t).Path)

		location, err := card.Location()
		require.NoError(t, err)
		assert.Equal(t, "/customers/cust_test/cards/card_test", location)
	})

	t.Run("identifier is a single path segment", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{"object": "charge", "id": "chrg_test/capture"}`)

		_, err := omise.NewClient(backend).Charges().Retrieve(context.Background(), "chrg_test/capture")
		require.NoError(t, err)
		assert.Equal(t, "/charges/chrg_test%2Fcapture", backend.last(t).Path)
	})

	t.Run("dot segments are rejected", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		client := omise.NewClient(backend)

		for _, id := range []string{".", ".."} {
			_, err := client.Charges().Retrieve(context.Background(), id)
			require.ErrorIs(t, err, omise.ErrInvalidIdentifier, id)
		}

		_, err := client.Cards("..").Retrieve(context.Background(), "card_test")
		require.ErrorIs(t, err, omise.ErrInvalidIdentifier)
		assert.Empty(t, backend.requests)
	})

	t.Run("empty scope", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		client := omise.NewClient(backend)

		_, err := client.Cards("").Retrieve(context.Background(), "card_test")
		require.ErrorIs(t, err, omise.ErrNoLocation)

		_, err = client.Cards("").List(context.Background(), nil)
		require.ErrorIs(t, err, omise.ErrNoLocation)
		assert.Empty(t, backend.requests)
	})

	t.Run("error payload", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{"object": "error", "code": "authentication_failure", "message": "authentication failed"}`)

		_, err := omise.NewClient(backend).Charges().Retrieve(context.Background(), "chrg_test")
		require.Error(t, err)
		assert.True(t, omise.IsAuthenticationFailure(err))
		assert.False(t, omise.IsNotFound(err))
	})
}

func TestResources_Create(t *testing.T) {
	t.Parallel()

	t.Run("token wraps parameters in the card group", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, tokenJSON)

		token, err := omise.NewClient(backend).Tokens().Create(context.Background(), omise.Params{
			"name":             "Somchai Prasert",
			"number":           "4242424242424242",
			"expiration_month": 10,
			"expiration_year":  2018,
			"city":             "Bangkok",
			"postal_code":      "10320",
			"security_code":    123,
		})
		require.NoError(t, err)

		req := backend.last(t)
		assert.Equal(t, omise.HostVault, req.Host)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/tokens", req.Path)
		assert.Equal(t, omise.Params{"card": map[string]any{
			"name":             "Somchai Prasert",
			"number":           "4242424242424242",
			"expiration_month": 10,
			"expiration_year":  2018,
			"city":             "Bangkok",
			"postal_code":      "10320",
			"security_code":    123,
		}}, req.Params)

		card, err := token.GetObject("card")
		require.NoError(t, err)
		assert.Same(t, omise.CardKind, card.Kind())
		assert.Equal(t, "tokn_test", token.ID())
	})

	t.Run("charge", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, chargeJSON)
		params := omise.Params{
			"return_uri":  "https://www.example.com/",
			"amount":      100000,
			"currency":    "thb",
			"description": "Order-384",
			"ip":          "127.0.0.1",
			"card":        "tokn_test",
		}

		charge, err := omise.NewClient(backend).Charges().Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, sentRequest{Host: omise.HostAPI, Method: http.MethodPost, Path: "/charges", Params: params}, backend.last(t))

		view, err := omise.As[omise.Charge](charge)
		require.NoError(t, err)
		assert.Equal(t, int64(100000), view.Amount)
		require.NotNil(t, view.Card)
		assert.Equal(t, "4242", view.Card.LastDigits)
		assert.Nil(t, view.Transaction)
		assert.Nil(t, view.Customer)
	})

	t.Run("read-only kind", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		_, err := omise.NewClient(backend).Transactions().Create(context.Background(), omise.Params{"amount": 1})
		require.ErrorIs(t, err, omise.ErrOperationNotSupported)
		assert.Empty(t, backend.requests)
	})
}

func TestResources_List(t *testing.T) {
	t.Parallel()

	const transactions = `{
		"object": "list",
		"offset": 0,
		"limit": 20,
		"total": 2,
		"data": [
			{"object": "transaction", "id": "trxn_test_1", "type": "credit", "amount": 9635024},
			{"object": "transaction", "id": "trxn_test_2", "type": "debit", "amount": 100025}
		]
	}`

	t.Run("without options", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, transactions)

		coll, err := omise.NewClient(backend).Transactions().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, sentRequest{Host: omise.HostAPI, Method: http.MethodGet, Path: "/transactions"}, backend.last(t))
		assert.Equal(t, []string{"trxn_test_1", "trxn_test_2"}, coll.IDs())
		assert.Same(t, omise.TransactionKind, coll.Kind())
	})

	t.Run("with options", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, transactions)
		opts := &omise.ListOptions{
			Offset: 20,
			Limit:  50,
			From:   time.Date(2014, 10, 1, 0, 0, 0, 0, time.UTC),
			Order:  omise.OrderReverseChronological,
		}

		_, err := omise.NewClient(backend).Transactions().List(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, omise.Params{
			"offset": "20",
			"limit":  "50",
			"from":   "2014-10-01T00:00:00Z",
			"order":  "reverse_chronological",
		}, backend.last(t).Params)
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}

		_, err := omise.NewClient(backend).Transactions().List(context.Background(), &omise.ListOptions{Limit: 1000})
		require.Error(t, err)

		_, err = omise.NewClient(backend).Transactions().List(context.Background(), &omise.ListOptions{Order: "sideways"})
		require.Error(t, err)
		assert.Empty(t, backend.requests)
	})

	t.Run("not a list", func(t *testing.T) {
		t.Parallel()

		backend := (&fakeBackend{}).reply(t, `{"object": "transaction", "id": "trxn_test"}`)

		_, err := omise.NewClient(backend).Transactions().List(context.Background(), nil)
		require.ErrorIs(t, err, omise.ErrInvalidResponse)
	})

	t.Run("singleton kinds have no list", func(t *testing.T) {
		t.Parallel()

		_, err := omise.NewClient(&fakeBackend{}).Balance().List(context.Background(), nil)
		require.ErrorIs(t, err, omise.ErrOperationNotSupported)
	})
}

func TestResources_RetrieveAny(t *testing.T) {
	t.Parallel()

	backend := (&fakeBackend{}).
		reply(t, `{"object": "list", "total": 1, "data": [{"object": "transfer", "id": "trsf_test", "amount": 96350}]}`).
		reply(t, `{"object": "transfer", "id": "trsf_test", "location": "/transfers/trsf_test"}`).
		reply(t, `{"object": "balance", "available": 380470, "total": 380470, "currency": "thb"}`)
	client := omise.NewClient(backend)

	result, err := client.Transfers().RetrieveAny(context.Background(), "")
	require.NoError(t, err)
	require.IsType(t, &omise.Collection{}, result)
	assert.Equal(t, "/transfers", backend.requests[0].Path)

	result, err = client.Transfers().RetrieveAny(context.Background(), "trsf_test")
	require.NoError(t, err)
	require.IsType(t, &omise.Object{}, result)
	assert.Equal(t, "/transfers/trsf_test", backend.requests[1].Path)

	result, err = client.Balance().RetrieveAny(context.Background(), "")
	require.NoError(t, err)
	require.IsType(t, &omise.Object{}, result)
	assert.Equal(t, "/balance", backend.requests[2].Path)

	balance, ok := result.(*omise.Object)
	require.True(t, ok)

	view, err := omise.As[omise.Balance](balance)
	require.NoError(t, err)
	assert.Equal(t, int64(380470), view.Available)
}

func TestKinds(t *testing.T) {
	t.Parallel()

	for _, object := range []string{"account", "balance", "card", "charge", "customer", "token", "transaction", "transfer"} {
		kind, ok := omise.LookupKind(object)
		require.True(t, ok, object)
		assert.Equal(t, object, kind.Object)
	}

	tokens, err := omise.TokenKind.CollectionLocation(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tokens", tokens.String())
	assert.Equal(t, omise.HostAPI, omise.TokenKind.InstanceHost)

	cards, err := omise.CardKind.CollectionLocation(map[string]string{"customer": "cust_test"})
	require.NoError(t, err)
	assert.Equal(t, omise.NewPath("customers", "cust_test", "cards"), cards)
	assert.True(t, omise.TransactionKind.Supports(omise.OpList))
	assert.False(t, omise.TransactionKind.Supports(omise.OpCreate))

	_, ok := omise.LookupKind("nonexistent")
	assert.False(t, ok)
	assert.NotEmpty(t, omise.Kinds())
}

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path omise.Path
		want string
	}{
		{name: "segments", path: omise.NewPath("charges", "chrg_test", "capture"), want: "/charges/chrg_test/capture"},
		{name: "parsed location", path: omise.ParsePath("/customers/cust_test/cards/"), want: "/customers/cust_test/cards"},
		{name: "space", path: omise.NewPath("charges", "a b"), want: "/charges/a%20b"},
		{name: "slash stays in its segment", path: omise.NewPath("charges", "../account"), want: "/charges/..%2Faccount"},
		{name: "query characters", path: omise.NewPath("charges", "chrg?x=1#y"), want: "/charges/chrg%3Fx=1%23y"},
		{name: "empty", path: nil, want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}
