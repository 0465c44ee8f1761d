package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

var cardColumns = []string{"id", "brand", "last_digits", "expiration_month", "expiration_year", "name"}

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	resource := &resourceCommand{
		use:       "customers",
		aliases:   []string{"customer"},
		short:     "Manage customers",
		long:      "Create, list, update and delete customers",
		kind:      omise.CustomerKind,
		columns:   []string{"id", "email", "description", "default_card", "created"},
		updatable: true,
		deletable: true,
	}

	cmd := resource.build()
	cmd.AddCommand(newCustomerCardsCommand(resource))

	return cmd
}

// newCustomerCardsCommand shows the card list embedded in a customer, or one
// card of it.
func newCustomerCardsCommand(resource *resourceCommand) *cobra.Command {
	var cardID string

	cmd := &cobra.Command{
		Use:   "cards CUSTOMER_ID",
		Short: "Show the cards of a customer",
		Long:  "Display the cards embedded in a customer without listing them separately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customer, err := resource.retrieve(cmd, args[0])
			if err != nil {
				return err
			}

			cards, err := customer.GetCollection("cards")
			if err != nil {
				return fmt.Errorf("%w: %w", constants.ErrCardsNotEmbedded, err)
			}

			if cardID == "" {
				return renderCollection(cmd, cards, cardColumns)
			}

			card := cards.Retrieve(cardID)
			if card == nil {
				return fmt.Errorf("%w: %s", constants.ErrCardNotFound, cardID)
			}

			return renderObject(cmd, card)
		},
	}

	cmd.Flags().StringVar(&cardID, "card", "", "show only this card")

	return cmd
}
