package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// NewCardsCommand creates the cards command group. Cards always belong to a
// customer given with --customer.
func NewCardsCommand() *cobra.Command {
	var customerID string

	cmd := (&resourceCommand{
		use:     "cards",
		aliases: []string{"card"},
		short:   "Manage customer cards",
		long:    "List, inspect, update and delete the cards saved on a customer",
		kind:    omise.CardKind,
		columns: cardColumns,
		resources: func(client *omise.Client) *omise.Resources {
			return client.Cards(customerID)
		},
		updatable: true,
		deletable: true,
	}).build()

	cmd.PersistentFlags().StringVar(&customerID, "customer", "", "customer the cards belong to")
	_ = cmd.MarkPersistentFlagRequired("customer")

	return cmd
}
