package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// NewTokensCommand creates the tokens command group. Tokens are created on
// the vault host with the public key.
func NewTokensCommand() *cobra.Command {
	var promptCode bool

	cmd := (&resourceCommand{
		use:     "tokens",
		aliases: []string{"token"},
		short:   "Tokenize cards",
		long: `Create card tokens and inspect them. Card fields are given as parameters,
e.g. --param name="Somchai Prasert" --param number=4242424242424242.`,
		kind: omise.TokenKind,
		beforeCreate: func(cmd *cobra.Command, params omise.Params) error {
			if err := requirePublicKey(); err != nil {
				return err
			}

			if _, given := params["security_code"]; given || !promptCode {
				return nil
			}

			code, err := promptSecret(cmd.ErrOrStderr(), "security_code")
			if err != nil {
				return err
			}

			params["security_code"] = code

			return nil
		},
	}).build()

	for _, sub := range cmd.Commands() {
		if sub.Name() == "create" {
			sub.Flags().BoolVar(&promptCode, "prompt-security-code", false, "read the security code without echo")
		}
	}

	return cmd
}
