package omise

import "time"

// CustomerKind is a customer with its stored cards.
var CustomerKind = Register(&Kind{
	Name:     "Customer",
	Object:   "customer",
	Host:     HostAPI,
	ItemPath: "/customers/{id}",
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("livemode"),
		Scalar("location"),
		Scalar("default_card"),
		Scalar("email"),
		Scalar("description"),
		CollectionOf("cards", "card"),
		Scalar("created"),
		Scalar("deleted"),
	},
})

// Customer is a typed view of a customer object.
type Customer struct {
	Object      string      `json:"object"       yaml:"object"`
	ID          string      `json:"id"           yaml:"id"`
	Livemode    bool        `json:"livemode"     yaml:"livemode"`
	Location    string      `json:"location"     yaml:"location"`
	DefaultCard string      `json:"default_card" yaml:"default_card"`
	Email       string      `json:"email"        yaml:"email"`
	Description string      `json:"description"  yaml:"description"`
	Cards       *List[Card] `json:"cards"        yaml:"cards"`
	Created     time.Time   `json:"created"      yaml:"created"`
	Deleted     bool        `json:"deleted"      yaml:"deleted,omitempty"`
}
