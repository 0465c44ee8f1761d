package omise

import "time"

// TransferKind is a payout to the account's bank account.
var TransferKind = Register(&Kind{
	Name:     "Transfer",
	Object:   "transfer",
	Host:     HostAPI,
	ItemPath: "/transfers/{id}",
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("livemode"),
		Scalar("location"),
		Scalar("sent"),
		Scalar("paid"),
		Scalar("amount"),
		Scalar("currency"),
		Scalar("failure_code"),
		Scalar("failure_message"),
		Nested("transaction", "transaction"),
		Scalar("created"),
		Scalar("deleted"),
	},
})

// Transfer is a typed view of a transfer object.
type Transfer struct {
	Object         string       `json:"object"          yaml:"object"`
	ID             string       `json:"id"              yaml:"id"`
	Livemode       bool         `json:"livemode"        yaml:"livemode"`
	Location       string       `json:"location"        yaml:"location"`
	Sent           bool         `json:"sent"            yaml:"sent"`
	Paid           bool         `json:"paid"            yaml:"paid"`
	Amount         int64        `json:"amount"          yaml:"amount"`
	Currency       string       `json:"currency"        yaml:"currency"`
	FailureCode    *string      `json:"failure_code"    yaml:"failure_code"`
	FailureMessage *string      `json:"failure_message" yaml:"failure_message"`
	Transaction    *Transaction `json:"transaction"     yaml:"transaction"`
	Created        time.Time    `json:"created"         yaml:"created"`
	Deleted        bool         `json:"deleted"         yaml:"deleted,omitempty"`
}
