package omise

import "time"

// TransactionKind is a balance movement. Transactions are read-only.
var TransactionKind = Register(&Kind{
	Name:       "Transaction",
	Object:     "transaction",
	Host:       HostAPI,
	ItemPath:   "/transactions/{id}",
	Operations: OpRetrieve | OpList,
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("type"),
		Scalar("amount"),
		Scalar("currency"),
		Scalar("created"),
	},
})

// Transaction types.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is a typed view of a transaction object.
type Transaction struct {
	Object   string    `json:"object"   yaml:"object"`
	ID       string    `json:"id"       yaml:"id"`
	Type     string    `json:"type"     yaml:"type"`
	Amount   int64     `json:"amount"   yaml:"amount"`
	Currency string    `json:"currency" yaml:"currency"`
	Created  time.Time `json:"created"  yaml:"created"`
}
