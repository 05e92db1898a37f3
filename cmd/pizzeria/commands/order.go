package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pizzeria/internal/domain"
)

// order <pizza> [--with topping]...: place one order and print its ticket.
func orderCmd() *cobra.Command {
	var with []string
	cmd := &cobra.Command{
		Use:   "order <pizza>",
		Short: "Place an order for one pizza with optional toppings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := appCtx.Orders.Place(args[0], with...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ticket: %s (%s)\n", o.Code, o.ID)
			fmt.Fprintf(out, "Order: %s\n", o.Item.Description())
			fmt.Fprintf(out, "Total: %s\n", domain.FormatMoney(o.Item.Cost()))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&with, "with", nil, "topping to add, repeatable and applied in order")
	return cmd
}
