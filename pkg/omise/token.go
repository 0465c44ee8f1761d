package omise

import "time"

// TokenKind is a one-time card token. Tokens are created and retrieved on the
// vault host with the public key; the location of an existing token is
// served by the API host.
var TokenKind = Register(&Kind{
	Name:           "Token",
	Object:         "token",
	Host:           HostVault,
	InstanceHost:   HostAPI,
	ItemPath:       "/tokens/{id}",
	CreateEnvelope: "card",
	Operations:     OpCreate | OpRetrieve,
	Fields: []Field{
		Scalar("object"),
		Scalar("id"),
		Scalar("livemode"),
		Scalar("location"),
		Scalar("used"),
		Nested("card", "card"),
		Scalar("created"),
	},
})

// Token is a typed view of a token object.
type Token struct {
	Object   string    `json:"object"   yaml:"object"`
	ID       string    `json:"id"       yaml:"id"`
	Livemode bool      `json:"livemode" yaml:"livemode"`
	Location string    `json:"location" yaml:"location"`
	Used     bool      `json:"used"     yaml:"used"`
	Card     *Card     `json:"card"     yaml:"card"`
	Created  time.Time `json:"created"  yaml:"created"`
}
