package omise

import "time"

// BalanceKind is the singleton balance of the account.
var BalanceKind = Register(&Kind{
	Name:       "Balance",
	Object:     "balance",
	Host:       HostAPI,
	ItemPath:   "/balance",
	Singleton:  true,
	Operations: OpRetrieve,
	Fields: []Field{
		Scalar("object"),
		Scalar("livemode"),
		Scalar("available"),
		Scalar("total"),
		Scalar("currency"),
		Scalar("created"),
	},
})

// Balance is a typed view of a balance object. Amounts are in the smallest
// currency unit.
type Balance struct {
	Object    string    `json:"object"    yaml:"object"`
	Livemode  bool      `json:"livemode"  yaml:"livemode"`
	Available int64     `json:"available" yaml:"available"`
	Total     int64     `json:"total"     yaml:"total"`
	Currency  string    `json:"currency"  yaml:"currency"`
	Created   time.Time `json:"created"   yaml:"created"`
}
