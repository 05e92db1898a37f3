package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pizzeria/internal/app"
)

var (
	menuPath     string
	notifyPolicy string
	verbose      bool
	appCtx       *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pizzeria",
		Short:        "Pizza ordering with a catalog, toppings and kitchen notifications",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("menu") {
				cfg.MenuPath = menuPath
			}
			if flags.Changed("notify-policy") {
				cfg.NotifyPolicy = notifyPolicy
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}

			log, err := app.NewLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			log.Debug("app wired", zap.Stringer("wire", appCtx))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&menuPath, "menu", "", "YAML file with extra pizzas and toppings")
	root.PersistentFlags().StringVar(&notifyPolicy, "notify-policy", "abort", "what to do when a listener fails: abort or continue")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(demoCmd(), menuCmd(), orderCmd(), trackCmd())
	return root
}
