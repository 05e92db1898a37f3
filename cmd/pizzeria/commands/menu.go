package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pizzeria/internal/domain"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List pizzas and toppings with their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "Pizzas:")
			for _, label := range appCtx.Catalog.Labels() {
				item, err := appCtx.Catalog.Build(label)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", label, item.Description(), domain.FormatMoney(item.Cost()))
			}

			fmt.Fprintln(tw, "Toppings:")
			for _, name := range appCtx.Toppings.Names() {
				t, _ := appCtx.Toppings.Lookup(name)
				fmt.Fprintf(tw, "  %s\t%s\t+%s\n", t.Name, t.Suffix, domain.FormatMoney(t.Delta))
			}
			return tw.Flush()
		},
	}
}
