package omise

import (
	"net/http"
	"time"
)

// ActionCapture captures an authorized charge.
const ActionCapture = "capture"

// ChargeKind is a card charge.
var ChargeKind = Register(&Kind{
	Name:     "Charge",
	Object:   "charge",
	Host:     HostAPI,
	ItemPath: "/charges/{id}",
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("livemode"),
		Scalar("location"),
		Scalar("amount"),
		Scalar("currency"),
		Scalar("description"),
		Scalar("capture"),
		Scalar("authorized"),
		Scalar("captured"),
		Nested("transaction", "transaction"),
		Scalar("return_uri"),
		Scalar("reference"),
		Scalar("authorize_uri"),
		Nested("card", "card"),
		Nested("customer", "customer"),
		Scalar("ip"),
		Scalar("failure_code"),
		Scalar("failure_message"),
		Scalar("created"),
	},
	Actions: map[string]Action{
		ActionCapture: {Method: http.MethodPost, Suffix: "capture"},
	},
})

// Charge is a typed view of a charge object. Transaction and Customer hold
// only an ID when the API does not expand them.
type Charge struct {
	Object         string       `json:"object"          yaml:"object"`
	ID             string       `json:"id"              yaml:"id"`
	Livemode       bool         `json:"livemode"        yaml:"livemode"`
	Location       string       `json:"location"        yaml:"location"`
	Amount         int64        `json:"amount"          yaml:"amount"`
	Currency       string       `json:"currency"        yaml:"currency"`
	Description    string       `json:"description"     yaml:"description"`
	Capture        bool         `json:"capture"         yaml:"capture"`
	Authorized     bool         `json:"authorized"      yaml:"authorized"`
	Captured       bool         `json:"captured"        yaml:"captured"`
	Transaction    *Transaction `json:"transaction"     yaml:"transaction"`
	ReturnURI      string       `json:"return_uri"      yaml:"return_uri"`
	Reference      string       `json:"reference"       yaml:"reference"`
	AuthorizeURI   string       `json:"authorize_uri"   yaml:"authorize_uri"`
	Card           *Card        `json:"card"            yaml:"card"`
	Customer       *Customer    `json:"customer"        yaml:"customer"`
	IP             string       `json:"ip"              yaml:"ip"`
	FailureCode    *string      `json:"failure_code"    yaml:"failure_code"`
	FailureMessage *string      `json:"failure_message" yaml:"failure_message"`
	Created        time.Time    `json:"created"         yaml:"created"`
}
