package omise

import "time"

// CardKind is a card stored on a customer. Cards have no top-level endpoint;
// they are reached through a customer.
var CardKind = Register(&Kind{
	Name:       "Card",
	Object:     "card",
	Host:       HostAPI,
	ItemPath:   "/customers/{customer}/cards/{id}",
	Operations: OpRetrieve | OpList,
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("livemode"),
		Scalar("location"),
		Scalar("country"),
		Scalar("city"),
		Scalar("postal_code"),
		Scalar("financing"),
		Scalar("last_digits"),
		Scalar("brand"),
		Scalar("expiration_month"),
		Scalar("expiration_year"),
		Scalar("fingerprint"),
		Scalar("name"),
		Scalar("security_code_check"),
		Scalar("created"),
		Scalar("deleted"),
	},
})

// Card is a typed view of a card object.
type Card struct {
	Object          string    `json:"object"           yaml:"object"`
	ID              string    `json:"id"               yaml:"id"`
	Livemode        bool      `json:"livemode"         yaml:"livemode"`
	Location        string    `json:"location"         yaml:"location,omitempty"`
	Country         string    `json:"country"          yaml:"country"`
	City            string    `json:"city"             yaml:"city"`
	PostalCode      string    `json:"postal_code"      yaml:"postal_code"`
	Financing       string    `json:"financing"        yaml:"financing"`
	LastDigits      string    `json:"last_digits"      yaml:"last_digits"`
	Brand           string    `json:"brand"            yaml:"brand"`
	ExpirationMonth int       `json:"expiration_month" yaml:"expiration_month"`
	ExpirationYear  int       `json:"expiration_year"  yaml:"expiration_year"`
	Fingerprint     string    `json:"fingerprint"      yaml:"fingerprint"`
	Name            string    `json:"name"             yaml:"name"`
	Created         time.Time `json:"created"          yaml:"created"`
	Deleted         bool      `json:"deleted"          yaml:"deleted,omitempty"`
}
