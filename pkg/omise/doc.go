// Package omise provides the resource object model for the Omise payment API.
//
// # Overview
//
// Every resource (Account, Balance, Token, Card, Charge, Customer, Transfer,
// Transaction) is an *Object: an ordered set of attributes that mirror the
// last server payload, plus a record of the attributes assigned locally
// since then. A Kind declares where a resource lives and which of its
// attributes hold nested resources; one generic hydration routine turns a
// payload into an object graph using those declarations, so a charge's
// "card" attribute is already a Card object and a customer's "cards" is a
// *Collection of cards.
//
// Construct a client with the omiseclient package:
//
//	cli, err := omiseclient.New(&omise.Config{SecretKey: "skey_test_..."})
//	if err != nil { /* handle error */ }
//
//	charge, err := cli.Charges().Retrieve(ctx, "chrg_test")
//	if err != nil { /* handle error */ }
//
//	last, _ := charge.GetObject("card")
//	digits, _ := last.GetString("last_digits")
//
// # Change tracking
//
// Set records a change; Update sends exactly the changed attributes with a
// PATCH to the object's location and replaces every attribute with the
// server response:
//
//	charge.Set("description", "Order-384")
//	err = charge.Update(ctx)
//
// Reload re-fetches the object, Destroy deletes it and Perform runs a
// declared action such as ActionCapture. After a successful Destroy every
// remote operation returns ErrDestroyed.
//
// # Collections
//
// List endpoints return a *Collection. Elements are materialized on every
// access; At accepts negative indices, All returns an iter.Seq and Retrieve
// finds the first element with a given ID:
//
//	page, err := cli.Transfers().List(ctx, &omise.ListOptions{Limit: 50})
//	for transfer := range page.All() {
//	  fmt.Println(transfer)
//	}
//
// # Typed views
//
// Decode and As copy an object into a plain struct such as Charge:
//
//	view, err := omise.As[omise.Charge](charge)
//
// # Errors
//
// Error payloads returned by the API become *APIError. Helpers such as
// IsNotFound and IsAuthenticationFailure branch on common codes. Network
// errors are wrapped and can be inspected with errors.Is and errors.As.
package omise
