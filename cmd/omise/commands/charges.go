package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// NewChargesCommand creates the charges command group.
func NewChargesCommand() *cobra.Command {
	return (&resourceCommand{
		use:       "charges",
		aliases:   []string{"charge"},
		short:     "Manage charges",
		long:      "Create, list, update and capture charges",
		kind:      omise.ChargeKind,
		columns:   []string{"id", "amount", "authorized", "captured", "failure_code", "created"},
		updatable: true,
	}).build()
}
