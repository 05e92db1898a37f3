package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pizzeria/internal/domain"
	"pizzeria/internal/services/kitchen"
	"pizzeria/internal/services/toppings"
)

const demoCustomer = "Juan Perez"

var demoStatuses = []domain.Status{
	"En preparación",
	"En el horno",
	"Listo para entregar",
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Order a peperoni with toppings and follow it through the kitchen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// runDemo prints the fixed walkthrough: build, wrap, broadcast.
func runDemo(out io.Writer) error {
	fmt.Fprint(out, "=== PIZZA ORDERING SYSTEM WITH DESIGN PATTERNS ===\n\n")

	pizza, err := appCtx.Catalog.Build("peperoni")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "1. Base order created: %s | Cost: %s\n",
		pizza.Description(), domain.FormatMoney(pizza.Cost()))

	pizza = toppings.QuesoExtra(pizza)
	pizza = toppings.BordeRelleno(pizza)
	fmt.Fprintf(out, "2. Final order (with toppings): %s\n", pizza.Description())
	fmt.Fprintf(out, "   Total cost: %s\n", domain.FormatMoney(pizza.Cost()))

	k := appCtx.NewKitchen(kitchen.NewCustomer(demoCustomer, out))
	return drive(out, k, demoStatuses)
}

// drive announces each status and lets the kitchen notify its listeners.
func drive(out io.Writer, k domain.Broadcaster, statuses []domain.Status) error {
	for _, s := range statuses {
		fmt.Fprintf(out, "\n--- STATUS UPDATED: %s ---\n", s)
		if err := k.SetStatus(s); err != nil {
			return err
		}
	}
	return nil
}
