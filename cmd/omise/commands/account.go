package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return (&resourceCommand{
		use:   "account",
		short: "Show the account",
		long:  "Display the account the secret key belongs to",
		kind:  omise.AccountKind,
	}).build()
}

// NewBalanceCommand creates the balance command.
func NewBalanceCommand() *cobra.Command {
	return (&resourceCommand{
		use:   "balance",
		short: "Show the balance",
		long:  "Display the available and total balance of the account",
		kind:  omise.BalanceKind,
	}).build()
}
