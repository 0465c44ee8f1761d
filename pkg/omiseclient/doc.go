// Package omiseclient builds an omise.Client from an omise.Config.
//
// It validates the configuration, applies the default hosts, and creates one
// transport per host: the API host authenticated with the secret key and,
// when a public key is set, the vault host authenticated with the public key.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/omise-client/pkg/omise"
//	  "github.com/fivetwenty-io/omise-client/pkg/omiseclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := omiseclient.New(&omise.Config{
//	    SecretKey: "skey_test_...",
//	    PublicKey: "pkey_test_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  token, err := cli.Tokens().Create(ctx, omise.Params{
//	    "name":             "Somchai Prasert",
//	    "number":           "4242424242424242",
//	    "expiration_month": 10,
//	    "expiration_year":  2028,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  charge, err := cli.Charges().Create(ctx, omise.Params{
//	    "amount":   100000,
//	    "currency": "thb",
//	    "card":     token,
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = charge.Perform(ctx, omise.ActionCapture, nil)
//	}
//
// Retries are disabled unless Config.RetryMax is set. Requests honour the
// context passed to each operation.
package omiseclient
