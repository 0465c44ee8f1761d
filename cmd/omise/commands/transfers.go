package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// NewTransfersCommand creates the transfers command group.
func NewTransfersCommand() *cobra.Command {
	return (&resourceCommand{
		use:       "transfers",
		aliases:   []string{"transfer"},
		short:     "Manage transfers",
		long:      "Create, list, update and delete transfers to the account's bank account",
		kind:      omise.TransferKind,
		columns:   []string{"id", "amount", "sent", "paid", "failure_code", "created"},
		updatable: true,
		deletable: true,
	}).build()
}

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	return (&resourceCommand{
		use:     "transactions",
		aliases: []string{"transaction"},
		short:   "Inspect transactions",
		long:    "List and inspect the credits and debits of the account balance",
		kind:    omise.TransactionKind,
		columns: []string{"id", "type", "amount", "currency", "created"},
	}).build()
}
