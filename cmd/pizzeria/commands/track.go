package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pizzeria/internal/domain"
	"pizzeria/internal/services/kitchen"
)

// track <customer>... --status s...: notify every customer of each status.
func trackCmd() *cobra.Command {
	var statuses []string
	cmd := &cobra.Command{
		Use:   "track <customer>...",
		Short: "Subscribe customers to the kitchen and drive it through statuses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(statuses) == 0 {
				return fmt.Errorf("at least one --status is required")
			}
			out := cmd.OutOrStdout()

			listeners := make([]domain.Listener, 0, len(args))
			for _, name := range args {
				listeners = append(listeners, kitchen.NewCustomer(name, out))
			}
			k := appCtx.NewKitchen(listeners...)

			seq := make([]domain.Status, 0, len(statuses))
			for _, s := range statuses {
				seq = append(seq, domain.Status(s))
			}
			return drive(out, k, seq)
		},
	}
	cmd.Flags().StringArrayVar(&statuses, "status", nil, "status to broadcast, repeatable and sent in order")
	return cmd
}
