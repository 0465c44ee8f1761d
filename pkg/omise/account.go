package omise

import "time"

// AccountKind is the singleton account of the API key owner.
var AccountKind = Register(&Kind{
	Name:       "Account",
	Object:     "account",
	Host:       HostAPI,
	ItemPath:   "/account",
	Singleton:  true,
	Operations: OpRetrieve,
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("email"),
		Scalar("created"),
	},
})

// Account is a typed view of an account object.
type Account struct {
	Object  string    `json:"object"  yaml:"object"`
	ID      string    `json:"id"      yaml:"id"`
	Email   string    `json:"email"   yaml:"email"`
	Created time.Time `json:"created" yaml:"created"`
}
